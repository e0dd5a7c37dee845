// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents one sale payment joined with its property and
// property-type metadata. It is the unit of input for every analytics
// calculation: the persistence layer guarantees all six fields are populated
// because the join excludes payments without a matching property or type.
type Payment struct {
	SaleID              int
	PaymentDate         time.Time
	Amount              decimal.Decimal
	PropertyCode        int
	PropertyDescription string
	PropertyType        string
}

// PropertyType represents a category of property (e.g. "Apartamento").
type PropertyType struct {
	ID   int
	Name string
}

// Property represents a real-estate unit offered by the agency.
type Property struct {
	Code        int
	Description string
	TypeID      int
}
