package export

import (
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/bungogood/polycube/internal/model"
)

// pieceColor represents an RGB fill for a rendered piece.
type pieceColor struct {
	R, G, B int
}

// pieceColors is the palette cycled through when a piece's declared
// color is not recognized.
var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// rgbByName maps the puzzle file color names onto print colors.
var rgbByName = map[string]pieceColor{
	"red":           {R: 244, G: 67, B: 54},
	"green":         {R: 76, G: 175, B: 80},
	"blue":          {R: 33, G: 150, B: 243},
	"yellow":        {R: 255, G: 235, B: 59},
	"magenta":       {R: 233, G: 30, B: 99},
	"purple":        {R: 156, G: 39, B: 176},
	"cyan":          {R: 0, G: 188, B: 212},
	"white":         {R: 238, G: 238, B: 238},
	"black":         {R: 66, G: 66, B: 66},
	"bright red":    {R: 255, G: 82, B: 82},
	"bright green":  {R: 105, G: 240, B: 174},
	"bright blue":   {R: 68, G: 138, B: 255},
	"bright yellow": {R: 255, G: 255, B: 141},
	"bright purple": {R: 224, G: 64, B: 251},
	"bright cyan":   {R: 24, G: 255, B: 255},
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	layerGap     = 6.0
)

// PDF writes a report with one page per solution, each showing the
// volume layer by layer, followed by a summary page.
func PDF(path string, puz *model.Puzzle, solutions []model.Solution, explored int, elapsed time.Duration) error {
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, sol := range solutions {
		pdf.AddPage()
		renderSolutionPage(pdf, puz, sol, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, puz, len(solutions), explored, elapsed)

	return pdf.OutputFileAndClose(path)
}

// colorFor picks the print color for a piece, by declared name first
// and palette position otherwise.
func colorFor(piece model.Piece, idx int) pieceColor {
	if col, ok := rgbByName[piece.Color]; ok {
		return col
	}
	return pieceColors[idx%len(pieceColors)]
}

// renderSolutionPage draws one solution: a grid of squares per z layer,
// each cell filled with its piece's color and label.
func renderSolutionPage(pdf *fpdf.Fpdf, puz *model.Puzzle, sol model.Solution, num int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Solution %d: %s (%dx%dx%d)", num, puz.Name, puz.Dim.X, puz.Dim.Y, puz.Dim.Z)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	arr := arrangementFor(puz, sol)

	// Scale layers to fit side by side in the drawing area.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 20
	layers := puz.Dim.Z
	cellW := (drawWidth - float64(layers-1)*layerGap) / float64(layers*puz.Dim.X)
	cellH := drawHeight / float64(puz.Dim.Y)
	cell := math.Min(cellW, cellH)

	pdf.SetLineWidth(0.2)
	for z := 0; z < layers; z++ {
		originX := marginLeft + float64(z)*(float64(puz.Dim.X)*cell+layerGap)

		// Layer caption
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(80, 80, 80)
		pdf.SetXY(originX, drawAreaTop-5)
		pdf.CellFormat(float64(puz.Dim.X)*cell, 4, fmt.Sprintf("z = %d", z), "", 0, "L", false, 0, "")

		for y := 0; y < puz.Dim.Y; y++ {
			for x := 0; x < puz.Dim.X; x++ {
				idx := puz.Index(model.Coord{X: x, Y: y, Z: z})
				pid := puz.PieceAt(arr, idx)

				// y is drawn top-down so the top row is the highest y.
				px := originX + float64(x)*cell
				py := drawAreaTop + float64(puz.Dim.Y-1-y)*cell

				col := colorFor(puz.Pieces[pid], pid)
				pdf.SetFillColor(col.R, col.G, col.B)
				pdf.SetDrawColor(30, 30, 30)
				pdf.Rect(px, py, cell, cell, "FD")

				if cell > 5 {
					pdf.SetFont("Helvetica", "B", labelFontSize(cell))
					pdf.SetTextColor(0, 0, 0)
					label := puz.Pieces[pid].Label
					labelW := pdf.GetStringWidth(label)
					pdf.SetXY(px+(cell-labelW)/2, py+cell/2-2)
					pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
				}
			}
		}
	}

	drawPieceLegend(pdf, puz, drawAreaTop+float64(puz.Dim.Y)*cell+8)
}

// drawPieceLegend renders a compact legend of the puzzle's pieces.
func drawPieceLegend(pdf *fpdf.Fpdf, puz *model.Puzzle, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(20, 4, "Pieces:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 22
	maxX := pageWidth - marginRight

	for i, piece := range puz.Pieces {
		col := colorFor(piece, i)
		label := fmt.Sprintf("%s %s (%d cells)", piece.Label, piece.Name, piece.Size())
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final page with search statistics and the
// piece inventory.
func renderSummaryPage(pdf *fpdf.Fpdf, puz *model.Puzzle, solutions, explored int, elapsed time.Duration) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Search Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	rate := time.Duration(0)
	if solutions > 0 {
		rate = elapsed / time.Duration(solutions)
	}
	summaryItems := []struct {
		label string
		value string
	}{
		{"Puzzle", fmt.Sprintf("%s (%dx%dx%d)", puz.Name, puz.Dim.X, puz.Dim.Y, puz.Dim.Z)},
		{"Pieces", fmt.Sprintf("%d", len(puz.Pieces))},
		{"Solutions Found", fmt.Sprintf("%d", solutions)},
		{"Nodes Explored", fmt.Sprintf("%d", explored)},
		{"Elapsed Time", elapsed.Round(time.Millisecond).String()},
		{"Rate", fmt.Sprintf("%s per solution", rate.Round(time.Microsecond))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Piece Inventory", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 60, 20, 30, 90}
	headers := []string{"Label", "Name", "Cells", "Placements", "Shape"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, piece := range puz.Pieces {
		xPos = marginLeft
		rowData := []string{
			piece.Label,
			piece.Name,
			fmt.Sprintf("%d", piece.Size()),
			fmt.Sprintf("%d", len(piece.Placements)),
			shapeDescriptor(piece.Shape),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cellText := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cellText, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}
}

// labelFontSize returns a font size proportional to the cell size.
func labelFontSize(cell float64) float64 {
	switch {
	case cell > 14:
		return 9
	case cell > 8:
		return 7
	default:
		return 5
	}
}
