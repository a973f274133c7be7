package handler

import (
	"net/http"
	"strconv"

	"auctionbase-web/internal/auctionerrors"
	"auctionbase-web/internal/render"
	"auctionbase-web/internal/service"
)

// BidHandler serves the bid-submission form.
type BidHandler struct {
	bidService *service.BidService
	render     *render.Renderer
}

// NewBidHandler creates a new bid handler.
func NewBidHandler(bidService *service.BidService, r *render.Renderer) *BidHandler {
	return &BidHandler{bidService: bidService, render: r}
}

type addBidPage struct {
	Message   string
	Submitted bool
	AddResult bool
}

// AddBidForm handles GET /addbid.
func (h *BidHandler) AddBidForm(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "add_bid.html", addBidPage{})
}

// AddBid handles POST /addbid with form fields itemID, price, userID.
// Validation failures render an in-page message; only database
// failures surface as a server error.
func (h *BidHandler) AddBid(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	itemID := r.PostFormValue("itemID")
	price := r.PostFormValue("price")
	userID := r.PostFormValue("userID")

	if itemID == "" || price == "" || userID == "" {
		h.render.HTML(w, http.StatusOK, "add_bid.html", addBidPage{
			Message: "Fill Remaining Incomplete Fields",
		})
		return
	}

	amount, err := strconv.ParseFloat(price, 64)
	if err != nil {
		h.render.HTML(w, http.StatusOK, "add_bid.html", addBidPage{
			Message: "Enter a Valid Price",
		})
		return
	}

	err = h.bidService.PlaceBid(r.Context(), itemID, userID, amount)
	switch {
	case err == nil:
		h.render.HTML(w, http.StatusOK, "add_bid.html", addBidPage{
			Submitted: true,
			AddResult: true,
		})
	case auctionerrors.IsBidRejection(err):
		h.render.HTML(w, http.StatusOK, "add_bid.html", addBidPage{
			Message:   err.Error(),
			Submitted: true,
			AddResult: false,
		})
	default:
		h.render.Error(w, http.StatusInternalServerError, "Failed to record the bid.")
	}
}
