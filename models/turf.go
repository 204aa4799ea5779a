package models

// Turf is a rentable sports field listed in the catalog.
// Turfs have no owner: any caller may create, update or delete them.
type Turf struct {
	// TurfID is the store-assigned identifier, exposed as "_id" to keep the
	// wire format of existing clients.
	TurfID   int64   `json:"_id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
}

// TableName returns the name of the database table
// associated with the Turf model.
func (t Turf) TableName() string {
	return "turfs"
}

// NewTurf is the request body for creating a turf.
// Price is a pointer so that an explicit zero is distinguishable from a
// missing field.
type NewTurf struct {
	Name     string   `json:"name" validate:"required,notblank,max=200"`
	Location string   `json:"location" validate:"required,notblank,max=200"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
}

// Turf converts the creation request into a Turf without an identifier.
func (n NewTurf) Turf() Turf {
	t := Turf{Name: n.Name, Location: n.Location}
	if n.Price != nil {
		t.Price = *n.Price
	}
	return t
}

// TurfUpdate is a typed partial update of a turf.
// Only non-nil fields are applied.
type TurfUpdate struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,notblank,max=200"`
	Location *string  `json:"location,omitempty" validate:"omitempty,notblank,max=200"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

// IsEmpty reports whether the update carries no fields.
func (u TurfUpdate) IsEmpty() bool {
	return u.Name == nil && u.Location == nil && u.Price == nil
}
