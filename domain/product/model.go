package product

import "time"

// Product is the legacy product record, kept for backward compatibility
// with the pre-ebook storefront. Removal is a soft delete via IsActive.
type Product struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Subtitle      string      `json:"subtitle"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"original_price"`
	Features      []string    `json:"features"`
	Bonuses       []string    `json:"bonuses"`
	BuyButtons    []BuyButton `json:"buy_buttons"`
	IsActive      bool        `json:"is_active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type BuyButton struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	Enabled  bool   `json:"enabled"`
}
