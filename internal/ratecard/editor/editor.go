// Package editor implements copy-on-write edits on a single rate card.
// Every operation returns a fresh snapshot; callers holding the previous
// card value never observe a partial edit.
package editor

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/harborline/freightline/internal/ratecard/domain"
	"github.com/shopspring/decimal"
)

const defaultChargeHead = "New Charge"

// NewDraft returns an empty DRAFT card carrying a transient placeholder id.
func NewDraft(now time.Time) domain.RateCard {
	return domain.RateCard{
		ID:        domain.NewDraftID(),
		Mode:      domain.SeaFCL,
		Type:      domain.Spot,
		Status:    domain.StatusDraft,
		ValidFrom: now,
		ValidTo:   now,
		Currency:  "USD",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateCard applies the non-nil fields of patch to a copy of card. The
// validity-window invariant (validFrom <= validTo) is enforced, not
// auto-corrected; no other cross-field validation happens — changing the
// mode does not touch already-added charge rows.
func UpdateCard(card domain.RateCard, patch domain.CardPatch) (domain.RateCard, error) {
	next := card.Clone()

	if patch.Reference != nil {
		next.Reference = normalizeReference(*patch.Reference)
	}
	if patch.CarrierID != nil {
		next.CarrierID = *patch.CarrierID
	}
	if patch.CarrierName != nil {
		next.CarrierName = *patch.CarrierName
	}
	if patch.Mode != nil {
		switch *patch.Mode {
		case domain.SeaFCL, domain.SeaLCL, domain.Air, domain.Road:
			next.Mode = *patch.Mode
		default:
			return card, domain.ErrInvalidMode
		}
	}
	if patch.Type != nil {
		switch *patch.Type {
		case domain.Contract, domain.Spot:
			next.Type = *patch.Type
		default:
			return card, domain.ErrInvalidType
		}
	}
	if patch.ValidFrom != nil {
		next.ValidFrom = *patch.ValidFrom
	}
	if patch.ValidTo != nil {
		next.ValidTo = *patch.ValidTo
	}
	if patch.POL != nil {
		next.POL = *patch.POL
	}
	if patch.POD != nil {
		next.POD = *patch.POD
	}
	if patch.TransitTime != nil {
		next.TransitTime = *patch.TransitTime
	}
	if patch.Currency != nil {
		next.Currency = *patch.Currency
	}
	if patch.Incoterm != nil {
		next.Incoterm = *patch.Incoterm
	}
	if patch.FreeTime != nil {
		next.FreeTime = *patch.FreeTime
	}
	if patch.PaymentTerms != nil {
		next.PaymentTerms = *patch.PaymentTerms
	}

	if next.ValidFrom.After(next.ValidTo) {
		return card, domain.ErrInvalidValidityWindow
	}

	return next, nil
}

// AddChargeRow appends a defaulted row to the named section. The basis
// follows the card's current mode and the currency is copied from the card
// at insertion time, not live-linked afterward.
func AddChargeRow(card domain.RateCard, section domain.ChargeSection) (domain.RateCard, error) {
	row := domain.ChargeRow{
		ID:         uuid.NewString(),
		ChargeHead: defaultChargeHead,
		Basis:      domain.DefaultBasis(card.Mode),
		Price20DV:  decimal.Zero,
		Price40DV:  decimal.Zero,
		Price40HC:  decimal.Zero,
		Price40RF:  decimal.Zero,
		UnitPrice:  decimal.Zero,
		Percentage: decimal.Zero,
		Currency:   card.Currency,
	}

	next := card.Clone()
	switch section {
	case domain.SectionFreight:
		next.FreightCharges = append(next.FreightCharges, row)
	case domain.SectionOrigin:
		next.OriginCharges = append(next.OriginCharges, row)
	case domain.SectionDestination:
		next.DestCharges = append(next.DestCharges, row)
	default:
		return card, domain.ErrInvalidSection
	}
	return next, nil
}

// UpdateChargeRow applies the non-nil fields of patch to the row matching
// rowID within the section. An absent row id is a no-op.
func UpdateChargeRow(card domain.RateCard, section domain.ChargeSection, rowID string, patch domain.RowPatch) (domain.RateCard, error) {
	if !validSection(section) {
		return card, domain.ErrInvalidSection
	}
	if patch.Basis != nil {
		switch *patch.Basis {
		case domain.BasisContainer, domain.BasisTaxableWeight, domain.BasisFlat, domain.BasisPercentage:
		default:
			return card, domain.ErrInvalidBasis
		}
	}

	next := card.Clone()
	rows := sectionRows(&next, section)
	for i := range rows {
		if rows[i].ID == rowID {
			applyRowPatch(&rows[i], patch)
			break
		}
	}
	return next, nil
}

// RemoveChargeRow deletes the row matching rowID from the section. An
// absent row id is a no-op.
func RemoveChargeRow(card domain.RateCard, section domain.ChargeSection, rowID string) (domain.RateCard, error) {
	if !validSection(section) {
		return card, domain.ErrInvalidSection
	}

	next := card.Clone()
	rows := sectionRows(&next, section)
	for i := range rows {
		if rows[i].ID == rowID {
			setSectionRows(&next, section, append(rows[:i:i], rows[i+1:]...))
			break
		}
	}
	return next, nil
}

func applyRowPatch(row *domain.ChargeRow, patch domain.RowPatch) {
	if patch.ChargeHead != nil {
		row.ChargeHead = *patch.ChargeHead
	}
	if patch.IsSurcharge != nil {
		row.IsSurcharge = *patch.IsSurcharge
	}
	if patch.Basis != nil {
		row.Basis = *patch.Basis
	}
	if patch.Price20DV != nil {
		row.Price20DV = *patch.Price20DV
	}
	if patch.Price40DV != nil {
		row.Price40DV = *patch.Price40DV
	}
	if patch.Price40HC != nil {
		row.Price40HC = *patch.Price40HC
	}
	if patch.Price40RF != nil {
		row.Price40RF = *patch.Price40RF
	}
	if patch.UnitPrice != nil {
		row.UnitPrice = *patch.UnitPrice
	}
	if patch.Percentage != nil {
		row.Percentage = *patch.Percentage
	}
	if patch.Currency != nil {
		row.Currency = *patch.Currency
	}
}

func validSection(section domain.ChargeSection) bool {
	switch section {
	case domain.SectionFreight, domain.SectionOrigin, domain.SectionDestination:
		return true
	default:
		return false
	}
}

func sectionRows(card *domain.RateCard, section domain.ChargeSection) []domain.ChargeRow {
	switch section {
	case domain.SectionFreight:
		return card.FreightCharges
	case domain.SectionOrigin:
		return card.OriginCharges
	default:
		return card.DestCharges
	}
}

func setSectionRows(card *domain.RateCard, section domain.ChargeSection, rows []domain.ChargeRow) {
	switch section {
	case domain.SectionFreight:
		card.FreightCharges = rows
	case domain.SectionOrigin:
		card.OriginCharges = rows
	default:
		card.DestCharges = rows
	}
}

// normalizeReference keeps human-entered rate references URL- and
// filename-safe while preserving the uppercase convention used on sheets.
func normalizeReference(reference string) string {
	if reference == "" {
		return ""
	}
	return strings.ToUpper(slug.Make(reference))
}
