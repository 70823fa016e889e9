package repository

import "github.com/lumina-reserve/backend/internal/models"

// Sample collections are served whenever no backend is configured or a
// remote read fails. Every call returns a fresh slice so callers may
// mutate the result.

// SampleMenu returns the bundled menu
func SampleMenu() []models.MenuItem {
	return []models.MenuItem{
		{Category: "Signature Brews", Name: "Velvet Truffle Latte", Price: "$8.50", Description: "Espresso infused with black truffle oil and dark chocolate.", Image: "media/latte.jpg"},
		{Category: "Signature Brews", Name: "Gold Leaf Cappuccino", Price: "$9.00", Description: "Classic cappuccino topped with edible 24k gold leaf.", Image: "media/cappuccicno.jpg"},
		{Category: "Main Course", Name: "Truffle Pasta", Price: "$16.50", Description: "Handmade pasta with creamy truffle sauce.", Image: "media/pasta.jpg"},
		{Category: "Main Course", Name: "Gourmet Ravioli", Price: "$18.00", Description: "Stuffed ravioli with ricotta and spinach in sage butter.", Image: "media/ravioli.jpg"},
		{Category: "Quick Bites", Name: "Mexican Burrito", Price: "$12.00", Description: "Loaded burrito with beans, rice, and fresh salsa.", Image: "media/burrito wrap.jpg"},
		{Category: "Starters", Name: "Cheesy French Fries", Price: "$8.00", Description: "Crispy fries topped with melted cheddar and herbs.", Image: "media/French dries with cheese.jpg"},
		{Category: "Soups", Name: "Chef's Special Soup", Price: "$9.00", Description: "Daily special soup made with fresh seasonal ingredients.", Image: "media/Soup.jpg"},
	}
}

// SampleReviews returns the bundled reviews
func SampleReviews() []models.Review {
	return []models.Review{
		{Name: "Eleanor V.", Rating: 5, Comment: "An absolute sanctuary. The truffle latte is life-changing.", Date: "2023-10-15"},
		{Name: "James B.", Rating: 5, Comment: "The atmosphere is unmatched. Perfect for a quiet afternoon.", Date: "2023-10-12"},
		{Name: "Sophia L.", Rating: 4, Comment: "Exquisite pastries, though a bit pricey. Worth it for the vibe.", Date: "2023-10-10"},
	}
}

// SampleEvents returns the bundled events. They are never stored in the
// override store and so can never be deleted.
func SampleEvents() []models.Event {
	return []models.Event{
		{ID: "1", Title: "Masterclass: The Art of Pour-Over", Date: "2023-11-15", Time: "18:00", Description: "Learn the secrets of the perfect pour-over from our head barista.", Price: "$45", Image: "https://via.placeholder.com/300x200"},
		{ID: "2", Title: "Exclusive Cupping: Ethiopian Origins", Date: "2023-11-22", Time: "19:00", Description: "Taste rare single-origin beans from the highlands of Ethiopia.", Price: "$60", Image: "https://via.placeholder.com/300x200"},
	}
}

// SampleReservations returns an empty, non-nil list
func SampleReservations() []models.Reservation {
	return []models.Reservation{}
}
