package domain

// Product is a catalog entry. The ID is assigned by the catalog store
// and never changes afterwards.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Reviews     []Review `json:"reviews"`
}

// ProductDraft carries the admin form fields for a new product.
// Name, Price and Image are required; Category falls back to the
// store default when empty.
type ProductDraft struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

type Review struct {
	ID     int64  `json:"id"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// ClampRating forces a rating into the valid 1..5 range.
func ClampRating(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}
