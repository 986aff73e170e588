package stores

import (
	"errors"

	"github.com/gonetfly/gonetfly-backend/internal/models"
	"github.com/gonetfly/gonetfly-backend/pkg/utils"
	"gorm.io/gorm"
)

// referenceAttempts bounds reference regeneration on collision.
const referenceAttempts = 5

// BookingInput carries the booking fields a client submits.
type BookingInput struct {
	Airline     string
	Origin      string
	Destination string
	DepartDate  string
	ReturnDate  string
	Price       int64
	Passengers  int
}

// BookingStore persists bookings and generates their references.
type BookingStore struct {
	db *gorm.DB

	// generateReference is swapped in tests to force collisions.
	generateReference func() (string, error)
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{
		db:                db,
		generateReference: utils.GenerateBookingReference,
	}
}

// Create inserts a booking for the user with a fresh reference. The
// unique index on booking_reference is the collision arbiter: when the
// insert hits it, a new reference is generated and the insert retried.
func (s *BookingStore) Create(userID uint, input BookingInput) (*models.Booking, error) {
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		ref, err := s.generateReference()
		if err != nil {
			return nil, err
		}

		booking := models.Booking{
			UserID:           userID,
			Airline:          input.Airline,
			Origin:           input.Origin,
			Destination:      input.Destination,
			DepartDate:       input.DepartDate,
			ReturnDate:       input.ReturnDate,
			Price:            input.Price,
			Passengers:       input.Passengers,
			BookingReference: ref,
			Status:           models.BookingStatusConfirmed,
		}

		err = s.db.Create(&booking).Error
		if err == nil {
			return &booking, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	return nil, ErrReferenceExhausted
}

// ListByUser returns the user's bookings in insertion order.
func (s *BookingStore) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
