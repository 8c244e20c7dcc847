// Package domain contains the rate-card model shared by the catalog,
// the charge-sheet editor and the persistence gateway.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type TransportMode string

var (
	SeaFCL TransportMode = "SEA_FCL"
	SeaLCL TransportMode = "SEA_LCL"
	Air    TransportMode = "AIR"
	Road   TransportMode = "ROAD"
)

type RateType string

var (
	Contract RateType = "CONTRACT"
	Spot     RateType = "SPOT"
)

type RateStatus string

var (
	StatusDraft  RateStatus = "DRAFT"
	StatusActive RateStatus = "ACTIVE"
)

type ChargeBasis string

var (
	BasisContainer     ChargeBasis = "CONTAINER"
	BasisTaxableWeight ChargeBasis = "TAXABLE_WEIGHT"
	BasisFlat          ChargeBasis = "FLAT"
	BasisPercentage    ChargeBasis = "PERCENTAGE"
)

type ContainerSize string

var (
	Size20DV ContainerSize = "20DV"
	Size40DV ContainerSize = "40DV"
	Size40HC ContainerSize = "40HC"
	Size40RF ContainerSize = "40RF"
)

type ChargeSection string

var (
	SectionFreight     ChargeSection = "freight"
	SectionOrigin      ChargeSection = "origin"
	SectionDestination ChargeSection = "destination"
)

// ChargeRow is one cost line within a rate card. Per-container prices are
// only meaningful when Basis is CONTAINER; UnitPrice serves the weight and
// flat bases; Percentage serves the percentage basis (0-100 scale).
type ChargeRow struct {
	ID          string          `json:"id"`
	ChargeHead  string          `json:"charge_head"`
	IsSurcharge bool            `json:"is_surcharge"`
	Basis       ChargeBasis     `json:"basis"`
	Price20DV   decimal.Decimal `json:"price_20dv"`
	Price40DV   decimal.Decimal `json:"price_40dv"`
	Price40HC   decimal.Decimal `json:"price_40hc"`
	Price40RF   decimal.Decimal `json:"price_40rf"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Percentage  decimal.Decimal `json:"percentage"`
	Currency    string          `json:"currency"`
}

// ContainerPrice returns the unit price for a container size. The second
// return reports whether the row carries a usable price for that size.
func (r ChargeRow) ContainerPrice(size ContainerSize) (decimal.Decimal, bool) {
	var price decimal.Decimal
	switch size {
	case Size20DV:
		price = r.Price20DV
	case Size40DV:
		price = r.Price40DV
	case Size40HC:
		price = r.Price40HC
	case Size40RF:
		price = r.Price40RF
	default:
		return decimal.Zero, false
	}
	if price.IsZero() {
		return decimal.Zero, false
	}
	return price, true
}

// RateCard is one carrier's priced offer for a route, mode and validity
// window. Charge sections are stored inline with the card as JSON; rows have
// no identity outside their parent.
type RateCard struct {
	ID           string                          `json:"id" gorm:"primaryKey"`
	Reference    string                          `json:"reference" gorm:"type:text;not null"`
	CarrierID    string                          `json:"carrier_id" gorm:"type:text;not null;index"`
	CarrierName  string                          `json:"carrier_name" gorm:"type:text;not null"`
	Mode         TransportMode                   `json:"mode" gorm:"type:text;not null"`
	Type         RateType                        `json:"type" gorm:"type:text;not null"`
	Status       RateStatus                      `json:"status" gorm:"type:text;not null"`
	ValidFrom    time.Time                       `json:"valid_from" gorm:"not null"`
	ValidTo      time.Time                       `json:"valid_to" gorm:"not null"`
	POL          string                          `json:"pol" gorm:"column:pol;type:text;not null"`
	POD          string                          `json:"pod" gorm:"column:pod;type:text;not null"`
	TransitTime  int                             `json:"transit_time" gorm:"not null;default:0"`
	Currency     string                          `json:"currency" gorm:"type:text;not null"`
	Incoterm     string                          `json:"incoterm" gorm:"type:text"`
	FreeTime     int                             `json:"free_time" gorm:"not null;default:0"`
	PaymentTerms string                          `json:"payment_terms" gorm:"type:text"`
	FreightCharges datatypes.JSONSlice[ChargeRow] `json:"freight_charges" gorm:"column:freight_charges"`
	OriginCharges  datatypes.JSONSlice[ChargeRow] `json:"origin_charges" gorm:"column:origin_charges"`
	DestCharges    datatypes.JSONSlice[ChargeRow] `json:"dest_charges" gorm:"column:dest_charges"`
	// Timestamps are stamped by the service clock, not by gorm callbacks.
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;autoUpdateTime:false"`
}

// TableName sets the database table name.
func (RateCard) TableName() string { return "rate_cards" }

const draftIDPrefix = "draft_"

// NewDraftID returns a transient placeholder id. A card keeps it only until
// the first successful save assigns a persisted id.
func NewDraftID() string {
	return draftIDPrefix + uuid.NewString()
}

// IsDraftID reports whether id is a transient placeholder.
func IsDraftID(id string) bool {
	return strings.HasPrefix(id, draftIDPrefix)
}

// DefaultBasis returns the charge basis implied by a transport mode:
// air freight prices by chargeable weight, everything else by container.
func DefaultBasis(mode TransportMode) ChargeBasis {
	if mode == Air {
		return BasisTaxableWeight
	}
	return BasisContainer
}

// MatchesRoute compares origin/destination codes case-insensitively.
func (c RateCard) MatchesRoute(pol, pod string) bool {
	return strings.EqualFold(c.POL, pol) && strings.EqualFold(c.POD, pod)
}

// ValidOn reports whether date falls inside the inclusive validity window.
func (c RateCard) ValidOn(date time.Time) bool {
	return !date.Before(c.ValidFrom) && !date.After(c.ValidTo)
}

// Section returns the charge rows of the named section.
func (c RateCard) Section(section ChargeSection) []ChargeRow {
	switch section {
	case SectionFreight:
		return c.FreightCharges
	case SectionOrigin:
		return c.OriginCharges
	case SectionDestination:
		return c.DestCharges
	default:
		return nil
	}
}

// Clone returns a deep copy, so edits on the copy never leak into the
// original's charge sections.
func (c RateCard) Clone() RateCard {
	out := c
	out.FreightCharges = cloneRows(c.FreightCharges)
	out.OriginCharges = cloneRows(c.OriginCharges)
	out.DestCharges = cloneRows(c.DestCharges)
	return out
}

func cloneRows(rows []ChargeRow) []ChargeRow {
	if rows == nil {
		return nil
	}
	out := make([]ChargeRow, len(rows))
	copy(out, rows)
	return out
}
