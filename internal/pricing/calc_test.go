package pricing

import (
	"testing"

	"github.com/harborline/freightline/internal/ratecard/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usdRates() Rates {
	return Rates{
		Base: "USD",
		PerBase: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("0.9"),
			"MAD": decimal.RequireFromString("10"),
		},
	}
}

func TestCompute_ContainerBasis(t *testing.T) {
	row := domain.ChargeRow{
		ID:         "row_1",
		ChargeHead: "Ocean Freight",
		Basis:      domain.BasisContainer,
		Price20DV:  decimal.NewFromInt(100),
		Price40HC:  decimal.NewFromInt(180),
		Currency:   "USD",
	}
	qty := QuantityContext{Containers: map[domain.ContainerSize]int{
		domain.Size20DV: 2,
		domain.Size40HC: 1,
	}}

	got, err := Compute(row, qty, "USD", usdRates())
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(380)), "got %s", got.Amount)
	assert.Empty(t, got.Warnings)
}

func TestCompute_ContainerBasisMissingSizeWarns(t *testing.T) {
	row := domain.ChargeRow{
		ID:         "row_1",
		ChargeHead: "THC",
		Basis:      domain.BasisContainer,
		Price20DV:  decimal.NewFromInt(50),
		Currency:   "USD",
	}
	qty := QuantityContext{Containers: map[domain.ContainerSize]int{
		domain.Size20DV: 1,
		domain.Size40RF: 2,
	}}

	got, err := Compute(row, qty, "USD", usdRates())
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(50)), "got %s", got.Amount)
	require.Len(t, got.Warnings, 1)
	assert.Contains(t, got.Warnings[0], "40RF")
}

func TestCompute_TaxableWeightBasis(t *testing.T) {
	row := domain.ChargeRow{
		ID:        "row_1",
		Basis:     domain.BasisTaxableWeight,
		UnitPrice: decimal.RequireFromString("3.5"),
		Currency:  "USD",
	}
	qty := QuantityContext{ChargeableWeight: decimal.NewFromInt(250)}

	got, err := Compute(row, qty, "USD", usdRates())
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("875")), "got %s", got.Amount)
}

func TestCompute_FlatBasis(t *testing.T) {
	row := domain.ChargeRow{
		ID:        "row_1",
		Basis:     domain.BasisFlat,
		UnitPrice: decimal.NewFromInt(45),
		Currency:  "USD",
	}

	got, err := Compute(row, QuantityContext{}, "USD", usdRates())
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(45)))
}

func TestCompute_PercentageBasis(t *testing.T) {
	row := domain.ChargeRow{
		ID:         "row_1",
		Basis:      domain.BasisPercentage,
		Percentage: decimal.NewFromInt(10),
		Currency:   "MAD",
	}
	qty := QuantityContext{BaseAmount: decimal.NewFromInt(500)}

	// Base amount is already in the target currency; the row's own
	// currency plays no role.
	got, err := Compute(row, qty, "USD", usdRates())
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(50)), "got %s", got.Amount)
	assert.Equal(t, "USD", got.Currency)
}

func TestCompute_ConvertsIntoTargetCurrency(t *testing.T) {
	row := domain.ChargeRow{
		ID:        "row_1",
		Basis:     domain.BasisFlat,
		UnitPrice: decimal.NewFromInt(900),
		Currency:  "EUR",
	}

	// 900 EUR -> 1000 USD -> 10000 MAD.
	got, err := Compute(row, QuantityContext{}, "MAD", usdRates())
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(10000)), "got %s", got.Amount)
}

func TestCompute_MissingRateIsHardError(t *testing.T) {
	row := domain.ChargeRow{
		ID:        "row_1",
		Basis:     domain.BasisFlat,
		UnitPrice: decimal.NewFromInt(100),
		Currency:  "GBP",
	}

	_, err := Compute(row, QuantityContext{}, "USD", usdRates())
	assert.ErrorIs(t, err, ErrMissingRate)
}

func TestCompute_UnknownBasis(t *testing.T) {
	row := domain.ChargeRow{ID: "row_1", Basis: domain.ChargeBasis("PER_KM"), Currency: "USD"}

	_, err := Compute(row, QuantityContext{}, "USD", usdRates())
	assert.ErrorIs(t, err, ErrUnknownBasis)
}

func TestConvert_SameCurrencyBypassesTable(t *testing.T) {
	rates := Rates{Base: "USD"}

	got, err := rates.Convert(decimal.NewFromInt(42), "GBP", "GBP")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(42)))
}

func TestConvert_NonPositiveRateRejected(t *testing.T) {
	rates := Rates{
		Base:    "USD",
		PerBase: map[string]decimal.Decimal{"EUR": decimal.Zero},
	}

	_, err := rates.Convert(decimal.NewFromInt(10), "EUR", "USD")
	assert.ErrorIs(t, err, ErrMissingRate)
}
