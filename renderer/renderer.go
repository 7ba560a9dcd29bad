// Package renderer turns canonical statements and derived tables into
// markdown for the terminal. It owns all presentation concerns (currency
// formatting, column headers); no pipeline semantics live here.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"b3analyzer"
	"github.com/Rhymond/go-money"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// brl formats a decimal value as Brazilian reais.
func brl(v decimal.Decimal) string {
	cur := money.GetCurrency(money.BRL)
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	return money.New(v.Mul(factor).Round(0).IntPart(), money.BRL).Display()
}

// Statement renders the canonical statement in its fixed column order.
func Statement(title string, s b3analyzer.Statement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	table := md.TableSet{
		Header: []string{
			"Entrada/Saída", "Ano", "Mes", "Data", "Semana", "Ticker",
			"Descrição Ticker", "Movimentação", "Instituição",
			"Quantidade", "Preço unitário", "Valor da Operação",
		},
		Rows: [][]string{},
	}
	for _, t := range s {
		table.Rows = append(table.Rows, []string{
			string(t.Entry),
			strconv.Itoa(t.Year),
			t.MonthName(),
			t.Date.BRString(),
			strconv.Itoa(t.Week),
			t.Ticker,
			t.Description,
			t.Kind,
			t.Institution,
			t.Quantity.String(),
			brl(t.UnitPrice),
			brl(t.Value),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Table renders a derived table, value columns right-aligned and formatted
// as reais.
func Table(t b3analyzer.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(t.Name)

	alignment := make([]md.TableAlignment, 0, len(t.KeyHeaders)+len(t.Columns)+2)
	for range t.KeyHeaders {
		alignment = append(alignment, md.AlignLeft)
	}
	for i := 0; i < len(t.Columns)+2; i++ {
		alignment = append(alignment, md.AlignRight)
	}

	table := md.TableSet{
		Alignment: alignment,
		Header:    t.Headers(),
		Rows:      [][]string{},
	}
	for _, row := range t.Rows {
		cells := append([]string{}, row.Key...)
		for _, v := range row.Values {
			cells = append(cells, brl(v))
		}
		cells = append(cells, brl(row.Total), brl(row.Average))
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	return doc.String()
}

// AverageCost renders the per-asset position reconstruction.
func AverageCost(ticker string, entries []b3analyzer.PositionEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Preço Médio %s", ticker))
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight,
			md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{
			"Data", "Movimentação", "Quantidade", "Valor da Operação",
			"Saldo Quantidade", "Saldo Valor", "Preço Médio",
		},
		Rows: [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Date.BRString(),
			e.Kind,
			e.Quantity.String(),
			brl(e.Value),
			e.PositionQty.String(),
			brl(e.PositionValue),
			brl(e.AveragePrice),
		})
	}
	doc.Table(table)

	return doc.String()
}
