package models

// Review is a guest review shown on the landing page
type Review struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

const (
	MinRating = 1
	MaxRating = 5
)
