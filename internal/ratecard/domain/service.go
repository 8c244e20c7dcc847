package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Service owns the in-memory catalog, the single active draft and the
// persistence round trips that keep both in sync with the store.
type Service interface {
	// Refresh replaces the catalog wholesale from the store.
	Refresh(ctx context.Context) error
	List(ctx context.Context) []RateCard
	Get(ctx context.Context, id string) (*RateCard, error)
	Delete(ctx context.Context, id string) error

	// Resolve picks the single best-matching rate card for a route, mode
	// and ship date. A false second return means no card matched, which is
	// an expected outcome rather than an error.
	Resolve(ctx context.Context, req ResolveRequest) (*RateCard, bool, error)

	StartDraft(ctx context.Context) (RateCard, error)
	EditCard(ctx context.Context, id string) (RateCard, error)
	Draft(ctx context.Context) (RateCard, error)
	UpdateDraft(ctx context.Context, patch CardPatch) (RateCard, error)
	AddDraftCharge(ctx context.Context, section ChargeSection) (RateCard, error)
	UpdateDraftCharge(ctx context.Context, section ChargeSection, rowID string, patch RowPatch) (RateCard, error)
	RemoveDraftCharge(ctx context.Context, section ChargeSection, rowID string) (RateCard, error)
	SaveDraft(ctx context.Context) (RateCard, error)
	DiscardDraft(ctx context.Context)
}

// ResolveRequest identifies a shipment's route, mode and ship date.
type ResolveRequest struct {
	POL  string
	POD  string
	Mode TransportMode
	Date time.Time
}

// CardPatch carries scalar attribute updates for the active draft. Only
// non-nil fields are applied; no cross-field revalidation happens beyond
// the validity-window invariant.
type CardPatch struct {
	Reference    *string        `json:"reference"`
	CarrierID    *string        `json:"carrier_id"`
	CarrierName  *string        `json:"carrier_name"`
	Mode         *TransportMode `json:"mode"`
	Type         *RateType      `json:"type"`
	ValidFrom    *time.Time     `json:"valid_from"`
	ValidTo      *time.Time     `json:"valid_to"`
	POL          *string        `json:"pol"`
	POD          *string        `json:"pod"`
	TransitTime  *int           `json:"transit_time"`
	Currency     *string        `json:"currency"`
	Incoterm     *string        `json:"incoterm"`
	FreeTime     *int           `json:"free_time"`
	PaymentTerms *string        `json:"payment_terms"`
}

// RowPatch carries single-field updates for one charge row.
type RowPatch struct {
	ChargeHead  *string          `json:"charge_head"`
	IsSurcharge *bool            `json:"is_surcharge"`
	Basis       *ChargeBasis     `json:"basis"`
	Price20DV   *decimal.Decimal `json:"price_20dv"`
	Price40DV   *decimal.Decimal `json:"price_40dv"`
	Price40HC   *decimal.Decimal `json:"price_40hc"`
	Price40RF   *decimal.Decimal `json:"price_40rf"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Percentage  *decimal.Decimal `json:"percentage"`
	Currency    *string          `json:"currency"`
}
