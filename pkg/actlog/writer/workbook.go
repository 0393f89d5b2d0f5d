package writer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"actlog/pkg/actlog/models"
)

const (
	// Row 1 carries the sheet title and paste hint, row 2 the column
	// display names, row 3 the hidden machine-readable column names.
	// Data rows start at row 4.
	titleRow     = 2
	parameterRow = 3
	firstDataRow = 4

	// lastValidationRow bounds the dropdown validation ranges.
	lastValidationRow = 20000

	defaultColumnWidth = 16
)

// build renders the workbook: the Data sheet with one row per mapped
// row, the Metadata sheet filled from meta, and the Conversion helper
// sheet. columns gives the destination column order and must match the
// cell order of each row.
func build(tmpl *Template, columns []string, rows []models.MappedRow, meta map[string]string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetDefaultFont("Calibri"); err != nil {
		return nil, err
	}

	dataSheet := tmpl.Data.Name
	if err := f.SetSheetName(f.GetSheetName(0), dataSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "FF0000", Size: 12, Family: "Calibri"},
		Alignment: &excelize.Alignment{
			Vertical: "center",
		},
	})
	if err != nil {
		return nil, err
	}
	fieldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11, Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"B9F6F5"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	// Banner row: sheet title plus the paste hint carried over from the
	// template standard.
	if err := f.SetCellValue(dataSheet, "A1", tmpl.Data.Title); err != nil {
		return nil, err
	}
	if err := f.MergeCell(dataSheet, "B1", "H1"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(dataSheet, "B1", tmpl.Data.PasteHint); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(dataSheet, "A1", "H1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetRowHeight(dataSheet, 1, 24); err != nil {
		return nil, err
	}

	for i, name := range columns {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}

		display, width := name, float64(defaultColumnWidth)
		var values []string
		if tc, ok := tmpl.column(name); ok {
			if tc.Display != "" {
				display = tc.Display
			}
			if tc.Width > 0 {
				width = tc.Width
			}
			values = tc.Values
		}

		titleCell := fmt.Sprintf("%s%d", colName, titleRow)
		if err := f.SetCellValue(dataSheet, titleCell, display); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(dataSheet, titleCell, titleCell, fieldStyle); err != nil {
			return nil, err
		}
		paramCell := fmt.Sprintf("%s%d", colName, parameterRow)
		if err := f.SetCellValue(dataSheet, paramCell, name); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(dataSheet, colName, colName, width); err != nil {
			return nil, err
		}

		if len(values) > 0 {
			dv := excelize.NewDataValidation(true)
			dv.Sqref = fmt.Sprintf("%s%d:%s%d", colName, firstDataRow, colName, lastValidationRow)
			if err := dv.SetDropList(values); err != nil {
				return nil, err
			}
			if err := f.AddDataValidation(dataSheet, dv); err != nil {
				return nil, err
			}
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row.Cells {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, firstDataRow+rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(dataSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	// Keep the header block in view and hide the machine-name row.
	if err := f.SetPanes(dataSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      firstDataRow - 1,
		TopLeftCell: fmt.Sprintf("A%d", firstDataRow),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}
	if err := f.SetRowVisible(dataSheet, parameterRow, false); err != nil {
		return nil, err
	}

	if err := buildMetadataSheet(f, tmpl, meta); err != nil {
		return nil, err
	}
	if err := buildConversionSheet(f, tmpl); err != nil {
		return nil, err
	}

	idx, err := f.GetSheetIndex(dataSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	return f, nil
}

// buildMetadataSheet writes the fixed expedition-metadata block: one
// row per field with the display name, a hidden machine name column and
// the value.
func buildMetadataSheet(f *excelize.File, tmpl *Template, meta map[string]string) error {
	sheet := tmpl.Metadata.Name
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	paramStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 12, Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"B9F6F5"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{WrapText: true},
	})
	if err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "A", "A", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "C", "C", 50); err != nil {
		return err
	}
	if err := f.SetColVisible(sheet, "B", false); err != nil {
		return err
	}

	for i, field := range tmpl.Metadata.Fields {
		row := i + 1
		nameCell := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(sheet, nameCell, field.Display); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, nameCell, nameCell, paramStyle); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), field.Name); err != nil {
			return err
		}
		if value := meta[field.Name]; value != "" {
			if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), value); err != nil {
				return err
			}
		}

		// A taller abstract row nudges people to actually write one.
		height := 15.0
		switch field.Name {
		case "title":
			height = 30
		case "abstract":
			height = 150
		}
		if err := f.SetRowHeight(sheet, row, height); err != nil {
			return err
		}
	}
	return nil
}

// buildConversionSheet writes the coordinate-conversion helpers so
// positions noted in degrees and minutes can be turned into the decimal
// degrees the Data sheet expects.
func buildConversionSheet(f *excelize.File, tmpl *Template) error {
	sheet := tmpl.Conversion.Name
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 12, Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"B9F6F5"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 12, Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"23EEFF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	resultStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 12, Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FF94E8"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "A", "C", 30); err != nil {
		return err
	}

	type cell struct {
		ref     string
		value   string
		style   int
		formula string
		merge   string
	}
	cells := []cell{
		{ref: "A2", value: "Coordinate conversion", style: labelStyle},
		{ref: "A3", value: "Degrees Minutes Seconds", style: sectionStyle, merge: "B3"},
		{ref: "A4", value: "Degrees", style: labelStyle},
		{ref: "A5", value: "Minutes", style: labelStyle},
		{ref: "A6", value: "Seconds", style: labelStyle},
		{ref: "A7", value: "Decimal degrees", style: resultStyle},
		{ref: "B7", style: resultStyle, formula: "B4+B5/60+B6/3600"},
		{ref: "A8", value: "Degrees decimal minutes", style: sectionStyle, merge: "B8"},
		{ref: "A9", value: "Degrees", style: labelStyle},
		{ref: "A10", value: "Decimal minutes", style: labelStyle},
		{ref: "A11", value: "Decimal degrees", style: resultStyle},
		{ref: "B11", style: resultStyle, formula: "B9+B10/60"},
	}
	for _, c := range cells {
		if c.merge != "" {
			if err := f.MergeCell(sheet, c.ref, c.merge); err != nil {
				return err
			}
		}
		if c.value != "" {
			if err := f.SetCellValue(sheet, c.ref, c.value); err != nil {
				return err
			}
		}
		if c.formula != "" {
			if err := f.SetCellFormula(sheet, c.ref, c.formula); err != nil {
				return err
			}
		}
		if err := f.SetCellStyle(sheet, c.ref, c.ref, c.style); err != nil {
			return err
		}
	}
	return nil
}
