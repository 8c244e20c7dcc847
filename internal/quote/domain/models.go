// Package domain defines shipment quotations derived from resolved rate
// cards.
package domain

import (
	"context"
	"time"

	"github.com/harborline/freightline/internal/pricing"
	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
	"github.com/shopspring/decimal"
)

// Request describes the shipment being quoted. Currency selects the output
// currency of every computed line; an empty value falls back to the
// configured base currency.
type Request struct {
	POL              string                            `json:"pol"`
	POD              string                            `json:"pod"`
	Mode             ratedomain.TransportMode          `json:"mode"`
	Date             time.Time                         `json:"date"`
	Containers       map[ratedomain.ContainerSize]int  `json:"containers"`
	ChargeableWeight decimal.Decimal                   `json:"chargeable_weight"`
	Currency         string                            `json:"currency"`
}

// SectionBreakdown is the priced view of one charge section.
type SectionBreakdown struct {
	Section  ratedomain.ChargeSection `json:"section"`
	Lines    []pricing.LineResult     `json:"lines"`
	Subtotal decimal.Decimal          `json:"subtotal"`
}

// Quote is the full costing for one shipment against one rate card. All
// amounts share a single currency.
type Quote struct {
	RateCardID  string                   `json:"rate_card_id"`
	Reference   string                   `json:"reference"`
	CarrierName string                   `json:"carrier_name"`
	Mode        ratedomain.TransportMode `json:"mode"`
	POL         string                   `json:"pol"`
	POD         string                   `json:"pod"`
	TransitTime int                      `json:"transit_time"`
	FreeTime    int                      `json:"free_time"`
	Incoterm    string                   `json:"incoterm"`
	Currency    string                   `json:"currency"`
	Sections    []SectionBreakdown       `json:"sections"`
	Total       decimal.Decimal          `json:"total"`
	Warnings    []string                 `json:"warnings,omitempty"`
	GeneratedAt time.Time                `json:"generated_at"`
}

type Service interface {
	// Build resolves the best rate card for the request and prices every
	// charge section. A false second return means no card covered the
	// route, which is an expected outcome rather than an error.
	Build(ctx context.Context, req Request) (*Quote, bool, error)

	// RenderPDF builds the quote and renders it as a client-facing PDF.
	RenderPDF(ctx context.Context, req Request) ([]byte, *Quote, error)
}
