package models

import "time"

// Booking is a reservation of a turf slot made by an authenticated user.
//
// TurfName, Location and Price are a denormalised copy of the turf at booking
// time; there is no reference to the turfs table. Date and Time are accepted
// as the caller sent them.
type Booking struct {
	// ID is a UUID v4 generated by the application at creation time.
	ID       string  `json:"id"`
	TurfName string  `json:"turfName"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`

	// UserID is the owner of the booking. Every write is scoped by it.
	UserID int64 `json:"userId"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}

// NewBooking is the request body for creating a booking.
type NewBooking struct {
	TurfName string   `json:"turfName" validate:"required,notblank,max=200"`
	Location string   `json:"location" validate:"required,notblank,max=200"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Date     string   `json:"date" validate:"required,notblank,max=64"`
	Time     string   `json:"time" validate:"required,notblank,max=64"`
}

// Booking converts the creation request into a Booking for the given owner.
// The identifier is left empty for the ledger to fill in.
func (n NewBooking) Booking(userID int64) Booking {
	b := Booking{
		TurfName: n.TurfName,
		Location: n.Location,
		Date:     n.Date,
		Time:     n.Time,
		UserID:   userID,
	}
	if n.Price != nil {
		b.Price = *n.Price
	}
	return b
}

// BookingUpdate is a typed partial update of a booking.
// Only the enumerated fields are mutable; ID and UserID never change.
type BookingUpdate struct {
	TurfName *string  `json:"turfName,omitempty" validate:"omitempty,notblank,max=200"`
	Location *string  `json:"location,omitempty" validate:"omitempty,notblank,max=200"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Date     *string  `json:"date,omitempty" validate:"omitempty,notblank,max=64"`
	Time     *string  `json:"time,omitempty" validate:"omitempty,notblank,max=64"`
}

// IsEmpty reports whether the update carries no fields.
func (u BookingUpdate) IsEmpty() bool {
	return u.TurfName == nil && u.Location == nil && u.Price == nil && u.Date == nil && u.Time == nil
}
