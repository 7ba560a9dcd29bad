package b3analyzer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet pairs a workbook sheet name with the table it carries.
type Sheet struct {
	Name  string
	Table Table
}

// WriteTables serializes derived tables to a workbook, one sheet per table,
// with caller-supplied sheet names. Pure serialization: human readability is
// the contract, not byte-for-byte format fidelity.
func WriteTables(w io.Writer, sheets ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if err := addSheet(f, i, sheet.Name); err != nil {
			return err
		}
		if err := writeTable(f, sheet.Name, sheet.Table); err != nil {
			return err
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// WriteStatement serializes a canonical statement to a single-sheet
// workbook.
func WriteStatement(w io.Writer, name string, s Statement) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := addSheet(f, 0, name); err != nil {
		return err
	}
	header := []any{
		colEntry, "Ano", "Mes", colDate, "Semana", "Ticker", "Descrição Ticker",
		colKind, colInstitution, colQuantity, colUnitPrice, colValue,
	}
	if err := setRow(f, name, 1, header); err != nil {
		return err
	}
	for i, t := range s {
		row := []any{
			string(t.Entry), t.Year, t.MonthName(), t.Date.BRString(), t.Week,
			t.Ticker, t.Description, t.Kind, t.Institution,
			t.Quantity.InexactFloat64(), t.UnitPrice.InexactFloat64(), t.Value.InexactFloat64(),
		}
		if err := setRow(f, name, i+2, row); err != nil {
			return err
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// addSheet creates (or renames, for the first position) a sheet so the
// workbook carries exactly the requested names.
func addSheet(f *excelize.File, position int, name string) error {
	if position == 0 {
		// excelize always creates "Sheet1"; rename it instead of leaving an
		// empty default sheet behind.
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return fmt.Errorf("cannot name sheet %q: %w", name, err)
		}
		return nil
	}
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", name, err)
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, t Table) error {
	header := make([]any, 0, len(t.KeyHeaders)+len(t.Columns)+2)
	for _, h := range t.Headers() {
		header = append(header, h)
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cells := make([]any, 0, len(header))
		for _, k := range row.Key {
			cells = append(cells, k)
		}
		for _, v := range row.Values {
			cells = append(cells, v.InexactFloat64())
		}
		cells = append(cells, row.Total.InexactFloat64(), row.Average.InexactFloat64())
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("sheet %q row %d: %w", sheet, row, err)
	}
	return nil
}
