package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bungogood/polycube/internal/model"
)

// Excel writes a workbook with a Summary sheet of search statistics and
// a Solutions sheet listing every placement of every solution.
func Excel(path string, puz *model.Puzzle, solutions []model.Solution, explored int, elapsed time.Duration) error {
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	rate := time.Duration(0)
	if len(solutions) > 0 {
		rate = elapsed / time.Duration(len(solutions))
	}
	summaryRows := [][]interface{}{
		{"Puzzle", puz.Name},
		{"Volume", fmt.Sprintf("%dx%dx%d", puz.Dim.X, puz.Dim.Y, puz.Dim.Z)},
		{"Pieces", len(puz.Pieces)},
		{"Solutions", len(solutions)},
		{"Nodes explored", explored},
		{"Elapsed", elapsed.String()},
		{"Rate per solution", rate.String()},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	const solutionsSheet = "Solutions"
	if _, err := f.NewSheet(solutionsSheet); err != nil {
		return err
	}

	header := []interface{}{"Solution", "Piece", "Label", "Cells"}
	if err := f.SetSheetRow(solutionsSheet, "A1", &header); err != nil {
		return err
	}

	rowNum := 2
	for i, sol := range solutions {
		for _, placed := range sol {
			piece := puz.Pieces[placed.Piece]
			row := []interface{}{i + 1, piece.Name, piece.Label, cellList(placed.Cells)}
			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(solutionsSheet, cell, &row); err != nil {
				return err
			}
			rowNum++
		}
	}

	return f.SaveAs(path)
}

// cellList formats a placement's occupied cell indices as a compact
// comma-separated string.
func cellList(b model.Bitset) string {
	indices := b.Indices()
	out := ""
	for i, idx := range indices {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%d", idx)
	}
	return out
}
