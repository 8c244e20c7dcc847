package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/harborline/freightline/internal/clock"
	"github.com/harborline/freightline/internal/config"
	currencydomain "github.com/harborline/freightline/internal/currency/domain"
	"github.com/harborline/freightline/internal/pricing"
	"github.com/harborline/freightline/internal/providers/pdf"
	quotedomain "github.com/harborline/freightline/internal/quote/domain"
	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Config   config.Config
	Log      *zap.Logger
	Clock    clock.Clock
	Rates    currencydomain.Service
	RateCard ratedomain.Service
	PDF      pdf.Provider
}

type Service struct {
	base     string
	log      *zap.Logger
	clock    clock.Clock
	rates    currencydomain.Service
	rateCard ratedomain.Service
	pdf      pdf.Provider
}

func New(p Params) quotedomain.Service {
	return &Service{
		base:     p.Config.BaseCurrency,
		log:      p.Log.Named("quote.service"),
		clock:    p.Clock,
		rates:    p.Rates,
		rateCard: p.RateCard,
		pdf:      p.PDF,
	}
}

func (s *Service) Build(ctx context.Context, req quotedomain.Request) (*quotedomain.Quote, bool, error) {
	if req.POL == "" || req.POD == "" {
		return nil, false, quotedomain.ErrInvalidRequest
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.base
	}

	card, ok, err := s.rateCard.Resolve(ctx, ratedomain.ResolveRequest{
		POL:  req.POL,
		POD:  req.POD,
		Mode: req.Mode,
		Date: req.Date,
	})
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, false, err
	}

	quote := &quotedomain.Quote{
		RateCardID:  card.ID,
		Reference:   card.Reference,
		CarrierName: card.CarrierName,
		Mode:        card.Mode,
		POL:         card.POL,
		POD:         card.POD,
		TransitTime: card.TransitTime,
		FreeTime:    card.FreeTime,
		Incoterm:    card.Incoterm,
		Currency:    currency,
		GeneratedAt: s.clock.Now().UTC(),
	}

	qty := pricing.QuantityContext{
		Containers:       req.Containers,
		ChargeableWeight: req.ChargeableWeight,
	}

	sections := []ratedomain.ChargeSection{
		ratedomain.SectionFreight,
		ratedomain.SectionOrigin,
		ratedomain.SectionDestination,
	}
	for _, section := range sections {
		breakdown, err := s.priceSection(card, section, qty, currency, table)
		if err != nil {
			return nil, false, err
		}
		quote.Sections = append(quote.Sections, breakdown)
		quote.Total = quote.Total.Add(breakdown.Subtotal)
		for _, lineResult := range breakdown.Lines {
			quote.Warnings = append(quote.Warnings, lineResult.Warnings...)
		}
	}

	s.log.Info("quote built",
		zap.String("rate_card_id", card.ID),
		zap.String("currency", currency),
		zap.String("total", quote.Total.String()),
	)
	return quote, true, nil
}

// priceSection computes the section's non-percentage lines first; their
// subtotal in the target currency is the base percentage rows apply to.
func (s *Service) priceSection(card *ratedomain.RateCard, section ratedomain.ChargeSection, qty pricing.QuantityContext, currency string, table pricing.Rates) (quotedomain.SectionBreakdown, error) {
	breakdown := quotedomain.SectionBreakdown{Section: section}
	rows := card.Section(section)

	results := make(map[string]pricing.LineResult, len(rows))
	var flatSubtotal decimal.Decimal
	for _, row := range rows {
		if row.Basis == ratedomain.BasisPercentage {
			continue
		}
		result, err := pricing.Compute(row, qty, currency, table)
		if err != nil {
			return quotedomain.SectionBreakdown{}, err
		}
		results[row.ID] = result
		flatSubtotal = flatSubtotal.Add(result.Amount)
	}

	qty.BaseAmount = flatSubtotal
	for _, row := range rows {
		if row.Basis != ratedomain.BasisPercentage {
			continue
		}
		result, err := pricing.Compute(row, qty, currency, table)
		if err != nil {
			return quotedomain.SectionBreakdown{}, err
		}
		results[row.ID] = result
	}

	// Emit lines in sheet order.
	for _, row := range rows {
		result := results[row.ID]
		breakdown.Lines = append(breakdown.Lines, result)
		breakdown.Subtotal = breakdown.Subtotal.Add(result.Amount)
	}
	return breakdown, nil
}

func (s *Service) RenderPDF(ctx context.Context, req quotedomain.Request) ([]byte, *quotedomain.Quote, error) {
	quote, ok, err := s.Build(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, quotedomain.ErrNoMatch
	}

	reader, err := s.pdf.GenerateQuote(ctx, toQuoteData(quote))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", quotedomain.ErrRenderFailed, err)
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", quotedomain.ErrRenderFailed, err)
	}
	return raw, quote, nil
}

var sectionTitles = map[ratedomain.ChargeSection]string{
	ratedomain.SectionFreight:     "Freight Charges",
	ratedomain.SectionOrigin:      "Origin Charges",
	ratedomain.SectionDestination: "Destination Charges",
}

func toQuoteData(quote *quotedomain.Quote) pdf.QuoteData {
	data := pdf.QuoteData{
		Reference:   quote.Reference,
		CarrierName: quote.CarrierName,
		Route:       quote.POL + " - " + quote.POD,
		Mode:        string(quote.Mode),
		Incoterm:    quote.Incoterm,
		TransitTime: fmt.Sprintf("%d days", quote.TransitTime),
		FreeTime:    fmt.Sprintf("%d days", quote.FreeTime),
		QuoteDate:   quote.GeneratedAt.Format("2006-01-02"),
		Currency:    quote.Currency,
		Total:       formatAmount(quote.Total, quote.Currency),
		Warnings:    quote.Warnings,
	}
	for _, section := range quote.Sections {
		out := pdf.QuoteSection{
			Title:    sectionTitles[section.Section],
			Subtotal: formatAmount(section.Subtotal, quote.Currency),
		}
		for _, lineResult := range section.Lines {
			out.Lines = append(out.Lines, pdf.QuoteLine{
				ChargeHead: lineResult.ChargeHead,
				Amount:     formatAmount(lineResult.Amount, quote.Currency),
			})
		}
		data.Sections = append(data.Sections, out)
	}
	return data
}

func formatAmount(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + currency
}
