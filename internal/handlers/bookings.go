package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gonetfly/gonetfly-backend/internal/stores"
)

type BookFlightInput struct {
	Airline     string `json:"airline" binding:"required"`
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	DepartDate  string `json:"depart_date" binding:"required"`
	ReturnDate  string `json:"return_date"`
	// Pointer so a zero amount still counts as present: the price is
	// an opaque integer, not a value we constrain.
	Price      *int64 `json:"price" binding:"required"`
	Passengers int    `json:"passengers" binding:"required,min=1"`
}

// BookFlight creates a booking for the session user and returns the
// generated booking reference.
func BookFlight(bookings *stores.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var input BookFlightInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"status": "error", "message": err.Error()})
			return
		}

		booking, err := bookings.Create(userId, stores.BookingInput{
			Airline:     input.Airline,
			Origin:      input.Origin,
			Destination: input.Destination,
			DepartDate:  input.DepartDate,
			ReturnDate:  input.ReturnDate,
			Price:       *input.Price,
			Passengers:  input.Passengers,
		})
		if err != nil {
			c.JSON(500, gin.H{"status": "error", "message": "Failed to create booking"})
			return
		}

		c.JSON(201, gin.H{"status": "success", "booking_reference": booking.BookingReference})
	}
}

// MyBookings renders the session user's bookings.
func MyBookings(bookings *stores.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		list, err := bookings.ListByUser(userId)
		if err != nil {
			c.JSON(500, gin.H{"status": "error", "message": "Failed to fetch bookings"})
			return
		}

		c.HTML(200, "my_bookings.html", gin.H{
			"userName": c.GetString("userName"),
			"bookings": list,
		})
	}
}
