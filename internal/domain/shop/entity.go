// Package shop contains the domain model for grocery shops and their
// price tables. Like recipes, shops are immutable reference data owned by
// the catalog.
package shop

import "github.com/medmarket/bot/pkg/geo"

// Shop represents a grocery shop with its location and metadata.
type Shop struct {
	ID           string
	Name         string
	Chain        string
	Latitude     float64
	Longitude    float64
	Address      string
	Rating       float64 // 0-5
	WorkingHours string
	HasDelivery  bool
}

// Validate checks the invariants asserted at catalog-load time.
func (s Shop) Validate() error {
	if s.ID == "" {
		return ErrEmptyID
	}
	if s.Name == "" {
		return ErrEmptyName
	}
	if err := geo.ValidateCoordinates(s.Latitude, s.Longitude); err != nil {
		return ErrInvalidCoordinates
	}
	if s.Rating < 0 || s.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// PriceEntry is one product price line in a shop's price table. Tables are
// kept as ordered slices: the substring fallback of the price-match policy
// is defined as "first match in table order", so iteration order is part of
// the contract.
type PriceEntry struct {
	Product string
	Price   float64
}

// Validate validates the price entry
func (p PriceEntry) Validate() error {
	if p.Product == "" {
		return ErrEmptyProductName
	}
	if p.Price <= 0 {
		return ErrNonPositivePrice
	}
	return nil
}
