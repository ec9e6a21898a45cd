// Package sheet writes export rows to an .xlsx workbook.
package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/albapepper/nhl-stats-export/internal/export"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetName is the single worksheet in every export.
const SheetName = "NHL Stats"

// Column maps one spreadsheet column to a row field.
type Column struct {
	Header string
	Width  float64
	Value  func(export.Row) interface{}
}

// Columns is the fixed export schema, in order.
var Columns = []Column{
	{"Name", 25, func(r export.Row) interface{} { return r.Name }},
	{"Team", 8, func(r export.Row) interface{} { return r.Team }},
	{"Position", 9, func(r export.Row) interface{} { return r.Position }},
	{"Type", 10, func(r export.Row) interface{} { return r.Type }},
	{"Goals", 8, func(r export.Row) interface{} { return r.Goals }},
	{"Points", 8, func(r export.Row) interface{} { return r.Points }},
	{"Shots", 8, func(r export.Row) interface{} { return r.Shots }},
	{"Saves", 8, func(r export.Row) interface{} { return r.Saves }},
	{"Season Avg", 12, func(r export.Row) interface{} { return r.SeasonAverage }},
	{"L5 Avg", 10, func(r export.Row) interface{} { return r.LastFive }},
	{"L10 Avg", 10, func(r export.Row) interface{} { return r.LastTen }},
	{"Hit Rate", 10, func(r export.Row) interface{} { return r.HitRate }},
	{"TOI", 10, func(r export.Row) interface{} { return r.LastTOI }},
	{"Opponent", 12, func(r export.Row) interface{} { return r.LastOpponent }},
	{"Date", 12, func(r export.Row) interface{} { return r.LastDate }},
}

// Headers returns the header row.
func Headers() []string {
	out := make([]string, len(Columns))
	for i, c := range Columns {
		out[i] = c.Header
	}
	return out
}

// Filename is the download name for an export covering duration seasons.
func Filename(duration int) string {
	return fmt.Sprintf("nhl-%d-seasons.xlsx", duration)
}

// Write renders rows, in the order given, as a workbook on w.
func Write(w io.Writer, rows []export.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	// Header row and widths
	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c.Header
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(SheetName, col, col, c.Width); err != nil {
			return fmt.Errorf("set width %s: %w", col, err)
		}
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(Columns), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	// Data rows
	for i, r := range rows {
		values := make([]interface{}, len(Columns))
		for j, c := range Columns {
			values[j] = c.Value(r)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
