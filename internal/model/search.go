package model

// Auction status filter values.
const (
	StatusOpen       = "open"
	StatusClosed     = "closed"
	StatusNotStarted = "notStarted"
)

// SearchFilter holds the ad-hoc item search criteria. Zero-valued
// fields impose no constraint; supplied fields are ANDed together.
type SearchFilter struct {
	ItemID      string   `json:"item_id,omitempty"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	MinPrice    *float64 `json:"min_price,omitempty"`
	MaxPrice    *float64 `json:"max_price,omitempty"`
}

// IsEmpty reports whether no filter fields are set.
func (f SearchFilter) IsEmpty() bool {
	return f.ItemID == "" && f.Category == "" && f.Description == "" &&
		f.Status == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// NeedsClock reports whether evaluating the filter requires the
// current simulated time.
func (f SearchFilter) NeedsClock() bool {
	return f.Status != ""
}
