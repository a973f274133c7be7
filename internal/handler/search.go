package handler

import (
	"net/http"
	"strconv"

	"auctionbase-web/internal/model"
	"auctionbase-web/internal/render"
	"auctionbase-web/internal/service"
)

// SearchHandler serves the item search form.
type SearchHandler struct {
	searchService *service.SearchService
	render        *render.Renderer
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService *service.SearchService, r *render.Renderer) *SearchHandler {
	return &SearchHandler{searchService: searchService, render: r}
}

type searchPage struct {
	SearchResult []model.Item
}

// SearchForm handles GET /search.
func (h *SearchHandler) SearchForm(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "search.html", searchPage{})
}

// Search handles POST /search. Blank fields impose no constraint;
// unparsable price bounds are treated as absent.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	filter := model.SearchFilter{
		ItemID:      r.PostFormValue("itemID"),
		Category:    r.PostFormValue("category"),
		Description: r.PostFormValue("description"),
		Status:      r.PostFormValue("status"),
		MinPrice:    parsePrice(r.PostFormValue("minPrice")),
		MaxPrice:    parsePrice(r.PostFormValue("maxPrice")),
	}

	items, err := h.searchService.Search(r.Context(), filter)
	if err != nil {
		h.render.Error(w, http.StatusInternalServerError, "Search failed.")
		return
	}

	h.render.HTML(w, http.StatusOK, "search.html", searchPage{SearchResult: items})
}

func parsePrice(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
