package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"strava-dashboard/internal/strava"
)

const xlsxSheet = "Activities"

func writeCSV(path string, activities []strava.Activity) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		f.Close()
		return err
	}

	record := make([]string, len(Columns))
	for i := range activities {
		row, err := projectRow(&activities[i])
		if err != nil {
			f.Close()
			return fmt.Errorf("activity %d: %w", i, err)
		}
		for j, c := range row {
			record[j] = c.text
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeXLSX(path string, activities []strava.Activity) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, col := range Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range activities {
		row, err := projectRow(&activities[i])
		if err != nil {
			return fmt.Errorf("activity %d: %w", i, err)
		}

		values := make([]interface{}, len(row))
		for j, c := range row {
			switch {
			case c.number != nil:
				values[j] = *c.number
			case c.boolean != nil:
				values[j] = *c.boolean
			case c.text != "":
				values[j] = c.text
			default:
				values[j] = nil
			}
		}

		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(xlsxSheet, axis, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f.SaveAs(path)
}
