package models

import (
	"gorm.io/gorm"
)

type BookingStatus string

// Bookings are never mutated after creation, so confirmed is the only
// status ever written.
const BookingStatusConfirmed BookingStatus = "confirmed"

type Booking struct {
	gorm.Model
	UserID           uint          `json:"userId" gorm:"not null"`
	User             User          `json:"-"`
	Airline          string        `json:"airline" gorm:"not null"`
	Origin           string        `json:"origin" gorm:"not null"`
	Destination      string        `json:"destination" gorm:"not null"`
	DepartDate       string        `json:"departDate" gorm:"not null"`
	ReturnDate       string        `json:"returnDate"`
	Price            int64         `json:"price" gorm:"not null"`
	Passengers       int           `json:"passengers" gorm:"not null"`
	BookingReference string        `json:"bookingReference" gorm:"uniqueIndex;not null"`
	Status           BookingStatus `json:"status" gorm:"not null;default:'confirmed'"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}
