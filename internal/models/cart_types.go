package models

// CartItem is one purchasable line in a cart. Prices and display fields
// are snapshotted from the catalog record at add time and never re-read.
type CartItem struct {
	ID          string `json:"id"`
	ProductSlug string `json:"productSlug"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	Quantity    int    `json:"quantity"`
	PriceNet    int64  `json:"priceNet"`
	PriceGross  int64  `json:"priceGross"`
	Currency    string `json:"currency"`
	IsSample    bool   `json:"isSample"`
}

// CartLineID derives the stable line identity for a product. Samples get
// a distinct suffixed identity so a sample and a full purchase of the
// same product coexist as separate lines.
func CartLineID(productSlug string, sample bool) string {
	if sample {
		return productSlug + "-sample"
	}
	return productSlug
}
