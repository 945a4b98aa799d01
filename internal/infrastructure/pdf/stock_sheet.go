// Package pdf renders the printable stock sheet of a shop.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Shop name + district  │  Generated at              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SHOP: Address / Manager / Contact                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: # | Product | Quantity | Last updated               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Items count + QR with the shop reference           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/rationshop-api/internal/application/inventory"
	"github.com/jhoicas/rationshop-api/internal/domain/entity"
)

const timeLayout = "02/01/2006 15:04"

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventory.StockSheetGenerator = (*MarotoStockSheetGenerator)(nil)

// MarotoStockSheetGenerator implements inventory.StockSheetGenerator with Maroto v2.
type MarotoStockSheetGenerator struct {
	author string
}

// NewMarotoStockSheetGenerator builds the generator; author goes into the PDF metadata.
func NewMarotoStockSheetGenerator(author string) *MarotoStockSheetGenerator {
	return &MarotoStockSheetGenerator{author: author}
}

// GenerateStockSheet renders sheet and returns the PDF bytes.
func (g *MarotoStockSheetGenerator) GenerateStockSheet(ctx context.Context, sheet inventory.StockSheet) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sheet.Shop == nil {
		return nil, fmt.Errorf("pdf: stock sheet without shop")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Stock sheet - "+sheet.Shop.Name, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(shopRow(sheet.Shop))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(sheet.Entries)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(sheet))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate stock sheet: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(sheet inventory.StockSheet) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(sheet.Shop.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("District: "+sheet.Shop.DistrictName, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("STOCK SHEET", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New("Generated: "+sheet.GeneratedAt.Format(timeLayout), props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func shopRow(shop *entity.ShopDetail) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Address: "+nonEmpty(shop.Address, "-"), props.Text{Size: 8, Top: 1}),
			text.New(fmt.Sprintf("Manager: %s   |   Contact: %s   |   Email: %s",
				nonEmpty(shop.ManagerName, "not assigned"),
				nonEmpty(shop.ManagerContact, "-"),
				nonEmpty(shop.ManagerEmail, "-"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Product", 5, align.Left),
		h("Quantity", 3, align.Right),
		h("Last updated", 3, align.Right),
	)
}

func tableRows(entries []*entity.StockEntry) []core.Row {
	if len(entries) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("No products stocked yet.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		))}
	}
	rows := make([]core.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(e.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(FormatQuantity(e), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(e.LastUpdated.Format(timeLayout), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func footerRow(sheet inventory.StockSheet) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(ShopReference(sheet.Shop), props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New(fmt.Sprintf("Products stocked: %d", len(sheet.Entries)), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 4, Left: 3,
			}),
			text.New("Quantities as recorded by the shop ledger at generation time.", props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// FormatQuantity prints a quantity with at most three decimals and no trailing zeros.
func FormatQuantity(e *entity.StockEntry) string {
	return e.Quantity.Round(3).String()
}

// ShopReference is the QR payload identifying the shop.
func ShopReference(shop *entity.ShopDetail) string {
	return "rationshop:shop:" + shop.ID
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
