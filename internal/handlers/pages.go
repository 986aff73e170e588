package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gonetfly/gonetfly-backend/internal/services"
)

// Index renders the flight search form.
func Index() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(200, "index.html", gin.H{
			"userName": c.GetString("userName"),
		})
	}
}

// LoginPage renders the login form.
func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(200, "login.html", nil)
	}
}

// RegisterPage renders the registration form.
func RegisterPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(200, "register.html", nil)
	}
}

type SearchInput struct {
	Origin      string `form:"origin" binding:"required"`
	Destination string `form:"destination" binding:"required"`
	DepartDate  string `form:"depart_date" binding:"required"`
	ReturnDate  string `form:"return_date"`
	Passengers  int    `form:"passengers"`
}

// Search runs the flight search and renders the results page.
func Search(searcher services.FlightSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SearchInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"status": "error", "message": err.Error()})
			return
		}

		offers, err := searcher.Search(services.FlightQuery{
			Origin:      input.Origin,
			Destination: input.Destination,
			DepartDate:  input.DepartDate,
			ReturnDate:  input.ReturnDate,
			Passengers:  input.Passengers,
		})
		if err != nil {
			c.JSON(500, gin.H{"status": "error", "message": "Search failed"})
			return
		}

		c.HTML(200, "search_results.html", gin.H{
			"userName":    c.GetString("userName"),
			"flights":     offers,
			"origin":      input.Origin,
			"destination": input.Destination,
			"departDate":  input.DepartDate,
			"returnDate":  input.ReturnDate,
		})
	}
}

// BookingPage renders the booking form.
func BookingPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(200, "booking.html", gin.H{
			"userName": c.GetString("userName"),
		})
	}
}

// Confirmation renders the booking confirmation page.
func Confirmation() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(200, "confirmation.html", gin.H{
			"userName": c.GetString("userName"),
		})
	}
}

// ServiceWorker serves the service worker from the site root, which
// the browser requires for a root scope.
func ServiceWorker() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File("./static/js/sw.js")
	}
}
