package models

// MenuItem is a single dish or drink on the café menu.
// Price is kept as the sheet formats it, currency symbol included.
// Order as returned by the source is display order.
type MenuItem struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
