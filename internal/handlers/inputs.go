package handlers

import "github.com/lumina-reserve/backend/internal/models"

// DefaultEventImage is used when an event is created without an image
const DefaultEventImage = "https://images.unsplash.com/photo-1511578314322-379afb476865?q=80&w=2069"

// ReservationInput is the public booking form
type ReservationInput struct {
	Name   string `json:"name" validate:"required,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"omitempty,max=40"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,datetime=15:04"`
	Guests string `json:"guests" validate:"required,number"`
}

func (in ReservationInput) Reservation() models.Reservation {
	return models.Reservation{
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Date:   in.Date,
		Time:   in.Time,
		Guests: in.Guests,
	}
}

// SubscriberInput is the newsletter form
type SubscriberInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=200"`
}

func (in SubscriberInput) Subscriber() models.Subscriber {
	return models.Subscriber{Email: in.Email, Name: in.Name}
}

// EventInput is the admin event form. The id is assigned on creation.
type EventInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"omitempty,datetime=15:04"`
	Description string `json:"description" validate:"max=2000"`
	Price       string `json:"price" validate:"max=40"`
	Image       string `json:"image" validate:"omitempty,url"`
}

func (in EventInput) Event(id string) models.Event {
	image := in.Image
	if image == "" {
		image = DefaultEventImage
	}
	return models.Event{
		ID:          id,
		Title:       in.Title,
		Date:        in.Date,
		Time:        in.Time,
		Description: in.Description,
		Price:       in.Price,
		Image:       image,
	}
}

// LoginInput is the admin unlock form
type LoginInput struct {
	Password string `json:"password" validate:"required"`
}
