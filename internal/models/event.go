package models

// Event is a ticketed café event managed from the admin panel.
// ID is a creation timestamp, unique only per creating client.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}
