package editor

import (
	"testing"
	"time"

	"github.com/harborline/freightline/internal/ratecard/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAirDraft(t *testing.T) domain.RateCard {
	t.Helper()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	card := NewDraft(now)
	mode := domain.Air
	card, err := UpdateCard(card, domain.CardPatch{Mode: &mode})
	require.NoError(t, err)
	return card
}

func TestNewDraft_PlaceholderID(t *testing.T) {
	card := NewDraft(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, domain.IsDraftID(card.ID))
	assert.Equal(t, domain.StatusDraft, card.Status)
}

func TestUpdateCard_SingleField(t *testing.T) {
	card := NewDraft(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	pol := "Casablanca"
	next, err := UpdateCard(card, domain.CardPatch{POL: &pol})
	require.NoError(t, err)
	assert.Equal(t, "Casablanca", next.POL)
	assert.Empty(t, card.POL, "input card must not be mutated")
}

func TestUpdateCard_NormalizesReference(t *testing.T) {
	card := NewDraft(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	reference := "CMA Q2 2024 / West Med"
	next, err := UpdateCard(card, domain.CardPatch{Reference: &reference})
	require.NoError(t, err)
	assert.Equal(t, "CMA-Q2-2024-WEST-MED", next.Reference)
}

func TestUpdateCard_RejectsInvertedValidityWindow(t *testing.T) {
	card := NewDraft(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := UpdateCard(card, domain.CardPatch{ValidFrom: &from, ValidTo: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidValidityWindow)
}

func TestUpdateCard_ModeChangeKeepsExistingRowBases(t *testing.T) {
	card := NewDraft(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	card, err := AddChargeRow(card, domain.SectionFreight)
	require.NoError(t, err)
	require.Equal(t, domain.BasisContainer, card.FreightCharges[0].Basis)

	mode := domain.Air
	next, err := UpdateCard(card, domain.CardPatch{Mode: &mode})
	require.NoError(t, err)

	// Existing rows are not retroactively rebased.
	assert.Equal(t, domain.BasisContainer, next.FreightCharges[0].Basis)
}

func TestAddChargeRow_Defaults(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	card := NewDraft(now)
	currency := "EUR"
	card, err := UpdateCard(card, domain.CardPatch{Currency: &currency})
	require.NoError(t, err)

	next, err := AddChargeRow(card, domain.SectionOrigin)
	require.NoError(t, err)
	require.Len(t, next.OriginCharges, 1)

	row := next.OriginCharges[0]
	assert.NotEmpty(t, row.ID)
	assert.Equal(t, "New Charge", row.ChargeHead)
	assert.False(t, row.IsSurcharge)
	assert.Equal(t, domain.BasisContainer, row.Basis)
	assert.True(t, row.UnitPrice.IsZero())
	assert.Equal(t, "EUR", row.Currency)
}

func TestAddChargeRow_AirDefaultsToTaxableWeight(t *testing.T) {
	card := newAirDraft(t)

	next, err := AddChargeRow(card, domain.SectionFreight)
	require.NoError(t, err)
	assert.Equal(t, domain.BasisTaxableWeight, next.FreightCharges[0].Basis)
}

func TestAddChargeRow_CurrencyNotLiveLinked(t *testing.T) {
	card := NewDraft(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	card, err := AddChargeRow(card, domain.SectionFreight)
	require.NoError(t, err)
	require.Equal(t, "USD", card.FreightCharges[0].Currency)

	currency := "MAD"
	next, err := UpdateCard(card, domain.CardPatch{Currency: &currency})
	require.NoError(t, err)
	assert.Equal(t, "USD", next.FreightCharges[0].Currency)
}

func TestAddChargeRow_InvalidSection(t *testing.T) {
	card := NewDraft(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	_, err := AddChargeRow(card, domain.ChargeSection("customs"))
	assert.ErrorIs(t, err, domain.ErrInvalidSection)
}

func TestUpdateChargeRow_RoundTrip(t *testing.T) {
	card := NewDraft(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	card, err := AddChargeRow(card, domain.SectionFreight)
	require.NoError(t, err)
	card, err = AddChargeRow(card, domain.SectionFreight)
	require.NoError(t, err)

	target := card.FreightCharges[0].ID
	head := "Ocean Freight"
	price := decimal.NewFromInt(1250)
	next, err := UpdateChargeRow(card, domain.SectionFreight, target, domain.RowPatch{
		ChargeHead: &head,
		Price20DV:  &price,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ocean Freight", next.FreightCharges[0].ChargeHead)
	assert.True(t, next.FreightCharges[0].Price20DV.Equal(price))

	// Sibling row untouched, input snapshot untouched.
	assert.Equal(t, "New Charge", next.FreightCharges[1].ChargeHead)
	assert.Equal(t, "New Charge", card.FreightCharges[0].ChargeHead)
}

func TestUpdateChargeRow_AbsentIDIsNoop(t *testing.T) {
	card := NewDraft(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	card, err := AddChargeRow(card, domain.SectionDestination)
	require.NoError(t, err)

	head := "THC"
	next, err := UpdateChargeRow(card, domain.SectionDestination, "missing", domain.RowPatch{ChargeHead: &head})
	require.NoError(t, err)
	assert.Equal(t, []domain.ChargeRow(card.DestCharges), []domain.ChargeRow(next.DestCharges))
}

func TestRemoveChargeRow(t *testing.T) {
	card := NewDraft(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	card, err := AddChargeRow(card, domain.SectionFreight)
	require.NoError(t, err)
	card, err = AddChargeRow(card, domain.SectionFreight)
	require.NoError(t, err)

	removed := card.FreightCharges[0].ID
	kept := card.FreightCharges[1].ID

	next, err := RemoveChargeRow(card, domain.SectionFreight, removed)
	require.NoError(t, err)
	require.Len(t, next.FreightCharges, 1)
	assert.Equal(t, kept, next.FreightCharges[0].ID)

	// Removing a non-existent id changes nothing.
	same, err := RemoveChargeRow(next, domain.SectionFreight, "missing")
	require.NoError(t, err)
	assert.Equal(t, next.FreightCharges, same.FreightCharges)
}
