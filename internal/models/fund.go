package models

import "github.com/shopspring/decimal"

// Fund categories supported by the backend catalog.
const (
	CategoryFPV = "FPV"
	CategoryFIC = "FIC"
)

// Fund represents an investable product from the backend catalog.
// The catalog is read-only from this service's perspective.
// swagger:model Fund
type Fund struct {
	// Unique fund identifier
	// example: FPV_BTG_PACTUAL_RECAUDADORA
	FundID string `json:"fundId"`

	// Fund display name
	FundName string `json:"name"`

	// Fund category, FPV or FIC
	Category string `json:"category"`

	// Minimum subscription amount in COP
	MinAmount decimal.Decimal `json:"minAmount"`

	// Optional fund description
	Description string `json:"description,omitempty"`
}
