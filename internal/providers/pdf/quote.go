package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateQuote(ctx context.Context, data QuoteData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Freight Quotation", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New("Reference: "+data.Reference, props.Text{Top: 0}),
			text.New("Carrier: "+data.CarrierName, props.Text{Top: 4}),
			text.New("Route: "+data.Route, props.Text{Top: 8}),
			text.New("Mode: "+data.Mode, props.Text{Top: 12}),
		),
		col.New(6).Add(
			text.New("Quote date: "+data.QuoteDate, props.Text{Top: 0}),
			text.New("Incoterm: "+data.Incoterm, props.Text{Top: 4}),
			text.New("Transit time: "+data.TransitTime, props.Text{Top: 8}),
			text.New("Free time: "+data.FreeTime, props.Text{Top: 12}),
		),
	)

	for _, section := range data.Sections {
		m.AddRow(8,
			text.NewCol(12, section.Title, props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Top:   2,
			}),
		)
		for _, item := range section.Lines {
			m.AddRow(6,
				text.NewCol(8, item.ChargeHead, props.Text{Size: 9}),
				text.NewCol(4, item.Amount, props.Text{Size: 9, Align: align.Right}),
			)
		}
		m.AddRow(7,
			text.NewCol(8, "Subtotal", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.NewCol(4, section.Subtotal, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		)
		m.AddRow(3, line.NewCol(12))
	}

	m.AddRow(10,
		text.NewCol(8, "Total ("+data.Currency+")", props.Text{Size: 12, Style: fontstyle.Bold}),
		text.NewCol(4, data.Total, props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}),
	)

	for _, warning := range data.Warnings {
		m.AddRow(5,
			text.NewCol(12, "Note: "+warning, props.Text{Size: 8}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}
