package domain

// Product is the catalog snapshot mirrored into the external CRM.
// Upserted on the CRM side keyed by ID.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"` // integer minor units
	Currency string `json:"currency"`
	ImageURL string `json:"image_url,omitempty"`
	Active   bool   `json:"active"`
}
