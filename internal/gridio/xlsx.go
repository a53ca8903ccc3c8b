// Package gridio moves calibration grids between the in-memory
// representation and spreadsheet or CSV files. It is host-boundary glue:
// all numeric interpretation stays in the core packages.
package gridio

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"calibgrid/internal/cellvalue"
	"calibgrid/internal/gradient"
	"calibgrid/pkg/contracts/domain"
)

// LoadXLSX reads one sheet of a workbook into a grid. An empty sheet name
// selects the first sheet.
func LoadXLSX(path, sheet string) (domain.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return domain.Grid(rows), nil
}

// SaveXLSX writes a grid as plain cell values into a new workbook.
func SaveXLSX(path, sheet string, grid domain.Grid) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setSheetValues(f, sheet, grid); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// SaveHeatmapXLSX writes a grid with each numeric in-mask cell styled using
// the gradient scheme: gradient background, contrasting text color. Cells
// outside the mask and non-numeric cells are written unstyled.
func SaveHeatmapXLSX(path, sheet string, grid domain.Grid, mask domain.Mask, schemeName domain.SchemeName) error {
	scheme, err := gradient.ByName(schemeName)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := setSheetValues(f, sheet, grid); err != nil {
		return err
	}

	vr := gradient.Range(grid, mask)

	// One style per distinct color pair; a large table reuses a handful of
	// styles rather than allocating one per cell.
	styles := make(map[string]int)

	for r := mask.StartRow(); r < len(grid); r++ {
		for c := mask.StartCol(); c < len(grid[r]); c++ {
			cv := cellvalue.Parse(grid[r][c])
			if !cv.Valid {
				continue
			}
			cc := gradient.CellColors(cv.Value, vr.Min, vr.Max, scheme)

			key := cc.Background.Hex() + cc.Text.Hex()
			styleID, ok := styles[key]
			if !ok {
				styleID, err = f.NewStyle(&excelize.Style{
					Fill: excelize.Fill{
						Type:    "pattern",
						Pattern: 1,
						Color:   []string{excelColor(cc.Background)},
					},
					Font: &excelize.Font{Color: excelColor(cc.Text)},
				})
				if err != nil {
					return fmt.Errorf("create cell style: %w", err)
				}
				styles[key] = styleID
			}

			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell name (%d,%d): %w", r, c, err)
			}
			if err := f.SetCellStyle(resolveSheet(sheet), cell, cell, styleID); err != nil {
				return fmt.Errorf("style cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// setSheetValues writes grid cells into the workbook's target sheet,
// creating it when needed.
func setSheetValues(f *excelize.File, sheet string, grid domain.Grid) error {
	sheet = resolveSheet(sheet)
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", sheet, err)
		}
	}
	for r, row := range grid {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell name (%d,%d): %w", r, c, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

func resolveSheet(sheet string) string {
	if sheet == "" {
		return "Sheet1"
	}
	return sheet
}

// excelColor renders an RGB for the excelize style API, which takes RRGGBB
// without the leading '#'.
func excelColor(c domain.RGB) string {
	return strings.TrimPrefix(c.Hex(), "#")
}
