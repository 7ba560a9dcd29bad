package b3analyzer

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// Column headers of a B3 statement extract. Every uploaded file must carry
// this schema on its first row; column order in the file is irrelevant.
const (
	colEntry       = "Entrada/Saída"
	colDate        = "Data"
	colKind        = "Movimentação"
	colProduct     = "Produto"
	colInstitution = "Instituição"
	colQuantity    = "Quantidade"
	colUnitPrice   = "Preço unitário"
	colValue       = "Valor da Operação"
)

var statementColumns = []string{
	colEntry, colDate, colKind, colProduct,
	colInstitution, colQuantity, colUnitPrice, colValue,
}

// RawRow is one statement row as read from the spreadsheet, before
// canonicalization. All fields are the raw cell strings, except that the
// numeric placeholder "-" in unit price and operation value has already been
// resolved to "0".
type RawRow struct {
	Entry       string
	Date        string
	Kind        string
	Product     string
	Institution string
	Quantity    string
	UnitPrice   string
	Value       string
}

// numericSentinel is the placeholder B3 writes in numeric columns when the
// movement has no price or value (e.g. a stock split).
const numericSentinel = "-"

// ReadStatement reads a single B3 xlsx extract. Rows are returned in file
// order. The sentinel "-" is resolved to "0" in the two numeric columns it
// can appear in; no other value is interpreted at this stage.
func ReadStatement(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot open statement: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	cell := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}
	numeric := func(row []string, col string) string {
		v := cell(row, col)
		if v == numericSentinel {
			return "0"
		}
		return v
	}

	var raws []RawRow
	for _, row := range rows[1:] {
		raws = append(raws, RawRow{
			Entry:       cell(row, colEntry),
			Date:        cell(row, colDate),
			Kind:        cell(row, colKind),
			Product:     cell(row, colProduct),
			Institution: cell(row, colInstitution),
			Quantity:    cell(row, colQuantity),
			UnitPrice:   numeric(row, colUnitPrice),
			Value:       numeric(row, colValue),
		})
	}
	return raws, nil
}

// headerIndex maps the expected statement columns to their position in the
// header row.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range statementColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("statement is missing column %q", col)
		}
	}
	return index, nil
}

// ReadStatements reads several extracts and concatenates them: readers in
// argument order, rows in file order within each. An empty argument list is
// not an error, it yields an empty row set ("nothing to display").
func ReadStatements(readers ...io.Reader) ([]RawRow, error) {
	var all []RawRow
	for i, r := range readers {
		raws, err := ReadStatement(r)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i+1, err)
		}
		all = append(all, raws...)
	}
	return all, nil
}

// OpenStatements reads and concatenates the extracts at the given paths.
func OpenStatements(paths ...string) ([]RawRow, error) {
	var all []RawRow
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open statement %q: %w", path, err)
		}
		raws, err := ReadStatement(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("statement %q: %w", path, err)
		}
		all = append(all, raws...)
	}
	return all, nil
}
