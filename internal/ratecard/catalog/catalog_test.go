package catalog

import (
	"testing"
	"time"

	"github.com/harborline/freightline/internal/ratecard/domain"
	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func seaCard(id string, rateType domain.RateType, updatedAt string) domain.RateCard {
	return domain.RateCard{
		ID:        id,
		Mode:      domain.SeaFCL,
		Type:      rateType,
		Status:    domain.StatusActive,
		POL:       "CASABLANCA",
		POD:       "ROTTERDAM",
		ValidFrom: date("2024-01-01"),
		ValidTo:   date("2024-12-31"),
		Currency:  "USD",
		UpdatedAt: date(updatedAt),
	}
}

func TestFindBestMatch_ContractOutranksSpot(t *testing.T) {
	c := New()
	c.Load([]domain.RateCard{
		seaCard("card_a", domain.Contract, "2024-03-01"),
		seaCard("card_b", domain.Spot, "2024-06-01"),
	})

	// The spot card is fresher but contract always wins.
	best, ok := c.FindBestMatch("Casablanca", "Rotterdam", domain.SeaFCL, date("2024-05-15"))
	assert.True(t, ok)
	assert.Equal(t, "card_a", best.ID)
}

func TestFindBestMatch_RecencyWithinType(t *testing.T) {
	c := New()
	c.Load([]domain.RateCard{
		seaCard("older", domain.Spot, "2024-02-01"),
		seaCard("newer", domain.Spot, "2024-06-01"),
	})

	best, ok := c.FindBestMatch("CASABLANCA", "ROTTERDAM", domain.SeaFCL, date("2024-05-15"))
	assert.True(t, ok)
	assert.Equal(t, "newer", best.ID)
}

func TestFindBestMatch_FullTieKeepsCatalogOrder(t *testing.T) {
	c := New()
	c.Load([]domain.RateCard{
		seaCard("first", domain.Spot, "2024-06-01"),
		seaCard("second", domain.Spot, "2024-06-01"),
	})

	best, ok := c.FindBestMatch("casablanca", "rotterdam", domain.SeaFCL, date("2024-05-15"))
	assert.True(t, ok)
	assert.Equal(t, "first", best.ID)
}

func TestFindBestMatch_OutsideValidityWindow(t *testing.T) {
	c := New()
	c.Load([]domain.RateCard{
		seaCard("card_a", domain.Contract, "2024-03-01"),
		seaCard("card_b", domain.Spot, "2024-06-01"),
	})

	_, ok := c.FindBestMatch("Casablanca", "Rotterdam", domain.SeaFCL, date("2025-01-15"))
	assert.False(t, ok)
}

func TestFindBestMatch_WindowBoundsInclusive(t *testing.T) {
	c := New()
	c.Load([]domain.RateCard{seaCard("card_a", domain.Contract, "2024-03-01")})

	_, onStart := c.FindBestMatch("Casablanca", "Rotterdam", domain.SeaFCL, date("2024-01-01"))
	assert.True(t, onStart)

	_, onEnd := c.FindBestMatch("Casablanca", "Rotterdam", domain.SeaFCL, date("2024-12-31"))
	assert.True(t, onEnd)

	_, before := c.FindBestMatch("Casablanca", "Rotterdam", domain.SeaFCL, date("2023-12-31"))
	assert.False(t, before)
}

func TestFindBestMatch_SkipsDraftCards(t *testing.T) {
	draft := seaCard("draft", domain.Contract, "2024-06-01")
	draft.Status = domain.StatusDraft

	c := New()
	c.Load([]domain.RateCard{draft, seaCard("active", domain.Spot, "2024-02-01")})

	best, ok := c.FindBestMatch("Casablanca", "Rotterdam", domain.SeaFCL, date("2024-05-15"))
	assert.True(t, ok)
	assert.Equal(t, "active", best.ID)
}

func TestFindBestMatch_ExactModeOnly(t *testing.T) {
	c := New()
	c.Load([]domain.RateCard{seaCard("card_a", domain.Contract, "2024-03-01")})

	_, ok := c.FindBestMatch("Casablanca", "Rotterdam", domain.SeaLCL, date("2024-05-15"))
	assert.False(t, ok)
}

func TestFindBestMatch_Idempotent(t *testing.T) {
	c := New()
	c.Load([]domain.RateCard{
		seaCard("card_a", domain.Contract, "2024-03-01"),
		seaCard("card_b", domain.Spot, "2024-06-01"),
	})

	first, okFirst := c.FindBestMatch("Casablanca", "Rotterdam", domain.SeaFCL, date("2024-05-15"))
	second, okSecond := c.FindBestMatch("Casablanca", "Rotterdam", domain.SeaFCL, date("2024-05-15"))
	assert.True(t, okFirst)
	assert.True(t, okSecond)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, c.Len())
}

func TestUpsert_ReplacesInPlaceOrPrepends(t *testing.T) {
	c := New()
	c.Load([]domain.RateCard{
		seaCard("card_a", domain.Contract, "2024-03-01"),
		seaCard("card_b", domain.Spot, "2024-06-01"),
	})

	// Replacing keeps position.
	replacement := seaCard("card_b", domain.Spot, "2024-07-01")
	c.Upsert(replacement)
	cards := c.Cards()
	assert.Equal(t, []string{"card_a", "card_b"}, []string{cards[0].ID, cards[1].ID})
	assert.Equal(t, date("2024-07-01"), cards[1].UpdatedAt)

	// New ids are prepended.
	c.Upsert(seaCard("card_c", domain.Spot, "2024-08-01"))
	assert.Equal(t, "card_c", c.Cards()[0].ID)
}

func TestUpsert_VisibleToResolutionImmediately(t *testing.T) {
	c := New()
	c.Load([]domain.RateCard{seaCard("card_a", domain.Spot, "2024-03-01")})

	fresh := seaCard("card_b", domain.Contract, "2024-04-01")
	c.Upsert(fresh)

	best, ok := c.FindBestMatch("Casablanca", "Rotterdam", domain.SeaFCL, date("2024-05-15"))
	assert.True(t, ok)
	assert.Equal(t, "card_b", best.ID)
}

func TestRemove_AbsentIDIsNoop(t *testing.T) {
	c := New()
	c.Load([]domain.RateCard{seaCard("card_a", domain.Contract, "2024-03-01")})

	c.Remove("missing")
	assert.Equal(t, 1, c.Len())

	c.Remove("card_a")
	assert.Equal(t, 0, c.Len())
}

func TestLoad_LastLoadWins(t *testing.T) {
	c := New()
	c.Load([]domain.RateCard{seaCard("card_a", domain.Contract, "2024-03-01")})
	c.Load([]domain.RateCard{seaCard("card_b", domain.Spot, "2024-06-01")})

	_, found := c.Get("card_a")
	assert.False(t, found)
	_, found = c.Get("card_b")
	assert.True(t, found)
}

func TestCards_ReturnsCopies(t *testing.T) {
	card := seaCard("card_a", domain.Contract, "2024-03-01")
	card.FreightCharges = append(card.FreightCharges, domain.ChargeRow{ID: "row_1", ChargeHead: "Ocean Freight"})

	c := New()
	c.Load([]domain.RateCard{card})

	snapshot := c.Cards()
	snapshot[0].FreightCharges[0].ChargeHead = "mutated"

	stored, _ := c.Get("card_a")
	assert.Equal(t, "Ocean Freight", stored.FreightCharges[0].ChargeHead)
}
