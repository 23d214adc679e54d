package entity

import "github.com/rocketscienceinc/monopoly-backend/internal/board"

// PropertyState is the mutable side of a property: who owns it and what stands on it.
// Houses counts 0-4 houses; board.HotelLevel means a hotel.
type PropertyState struct {
	PropertyID string `json:"property_id"`
	OwnerID    string `json:"owner_id,omitempty"`
	Houses     int    `json:"houses"`
}

func (that *PropertyState) IsOwned() bool {
	return that.OwnerID != ""
}

func (that *PropertyState) HasHotel() bool {
	return that.Houses == board.HotelLevel
}

// Release - returns the property to the bank with nothing built on it.
func (that *PropertyState) Release() {
	that.OwnerID = ""
	that.Houses = 0
}
