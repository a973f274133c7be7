package handler

import (
	"errors"
	"net/http"

	"auctionbase-web/internal/auctionerrors"
	"auctionbase-web/internal/render"
	"auctionbase-web/internal/service"
)

// ItemHandler serves the item detail page.
type ItemHandler struct {
	itemService *service.ItemService
	render      *render.Renderer
}

// NewItemHandler creates a new item handler.
func NewItemHandler(itemService *service.ItemService, r *render.Renderer) *ItemHandler {
	return &ItemHandler{itemService: itemService, render: r}
}

// ItemDetail handles GET /itemdetail?itemID=...
func (h *ItemHandler) ItemDetail(w http.ResponseWriter, r *http.Request) {
	itemID := r.URL.Query().Get("itemID")
	if itemID == "" {
		h.render.Error(w, http.StatusBadRequest, "itemID is required.")
		return
	}

	detail, err := h.itemService.ItemDetail(r.Context(), itemID)
	switch {
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		h.render.Error(w, http.StatusNotFound, "No item with ID "+itemID+" exists.")
		return
	case errors.Is(err, auctionerrors.ErrTimeNotConfigured):
		h.render.Error(w, http.StatusInternalServerError, "The current time has not been configured.")
		return
	case err != nil:
		h.render.Error(w, http.StatusInternalServerError, "Failed to load the item.")
		return
	}

	h.render.HTML(w, http.StatusOK, "item_detail.html", detail)
}
