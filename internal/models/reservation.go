package models

// Reservation is a table booking made from the public form.
// Guests carries the party size as the form submits it.
type Reservation struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests string `json:"guests"`
}
