package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
)

// Provider renders client-facing documents. Quote data arrives fully
// formatted; the renderer does no arithmetic or currency work.
type Provider interface {
	GenerateQuote(ctx context.Context, data QuoteData) (io.Reader, error)
}

// QuoteData is the print-ready projection of a quotation.
type QuoteData struct {
	Reference   string
	CarrierName string
	Route       string
	Mode        string
	Incoterm    string
	TransitTime string
	FreeTime    string
	QuoteDate   string
	Currency    string

	Sections []QuoteSection
	Total    string
	Warnings []string
}

type QuoteSection struct {
	Title    string
	Lines    []QuoteLine
	Subtotal string
}

type QuoteLine struct {
	ChargeHead string
	Amount     string
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
