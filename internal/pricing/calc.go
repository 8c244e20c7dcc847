// Package pricing computes charge amounts from rate-card rows. It is pure
// arithmetic over decimals; rate lookup and shipment context come from the
// caller.
package pricing

import (
	"errors"
	"fmt"

	"github.com/harborline/freightline/internal/ratecard/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingRate  = errors.New("missing_rate")
	ErrUnknownBasis = errors.New("unknown_basis")
)

// Rates is an exchange-rate table against a single base currency. PerBase
// maps a currency code to the units of that currency per one unit of Base.
type Rates struct {
	Base    string
	PerBase map[string]decimal.Decimal
}

func (r Rates) rate(currency string) (decimal.Decimal, error) {
	if currency == r.Base {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := r.PerBase[currency]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMissingRate, currency)
	}
	return rate, nil
}

// Convert moves amount from one currency to another through the base. A
// missing or non-positive rate is a hard error; amounts are never passed
// through at 1:1.
func (r Rates) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	fromRate, err := r.rate(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := r.rate(to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Div(fromRate).Mul(toRate), nil
}

// QuantityContext carries the shipment quantities a charge row can price
// against. BaseAmount is the reference amount for percentage rows, already
// expressed in the calculation's target currency.
type QuantityContext struct {
	Containers       map[domain.ContainerSize]int
	ChargeableWeight decimal.Decimal
	BaseAmount       decimal.Decimal
}

// LineResult is one computed charge line in the target currency.
type LineResult struct {
	RowID      string          `json:"row_id"`
	ChargeHead string          `json:"charge_head"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Warnings   []string        `json:"warnings,omitempty"`
}

// Compute prices a single charge row for the given quantities and converts
// the result into targetCurrency. Container sizes without a price on the
// row contribute zero and produce a warning instead of failing the line.
func Compute(row domain.ChargeRow, qty QuantityContext, targetCurrency string, rates Rates) (LineResult, error) {
	result := LineResult{
		RowID:      row.ID,
		ChargeHead: row.ChargeHead,
		Currency:   targetCurrency,
	}

	var amount decimal.Decimal
	switch row.Basis {
	case domain.BasisContainer:
		for size, count := range qty.Containers {
			if count <= 0 {
				continue
			}
			price, ok := row.ContainerPrice(size)
			if !ok {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("no %s price on %q, counted as zero", size, row.ChargeHead))
				continue
			}
			amount = amount.Add(price.Mul(decimal.NewFromInt(int64(count))))
		}
	case domain.BasisTaxableWeight:
		amount = row.UnitPrice.Mul(qty.ChargeableWeight)
	case domain.BasisFlat:
		amount = row.UnitPrice
	case domain.BasisPercentage:
		// Percentage rows are computed on a base already in the target
		// currency, so no conversion applies.
		result.Amount = qty.BaseAmount.Mul(row.Percentage).Div(decimal.NewFromInt(100))
		return result, nil
	default:
		return LineResult{}, fmt.Errorf("%w: %s", ErrUnknownBasis, row.Basis)
	}

	converted, err := rates.Convert(amount, row.Currency, targetCurrency)
	if err != nil {
		return LineResult{}, err
	}
	result.Amount = converted
	return result, nil
}
