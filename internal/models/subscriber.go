package models

// Subscriber is a mailing list sign-up. It is never read back.
type Subscriber struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
