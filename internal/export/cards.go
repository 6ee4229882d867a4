package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/bungogood/polycube/internal/model"
)

// CardInfo holds the data encoded into each solution card's QR code, a
// machine-readable record of one solution.
type CardInfo struct {
	Puzzle   string          `json:"puzzle"`
	Solution int             `json:"solution"`
	Pieces   []CardPlacement `json:"pieces"`
}

// CardPlacement records one placed piece by name and occupied cells.
type CardPlacement struct {
	Name  string `json:"name"`
	Cells []int  `json:"cells"`
}

// Card layout constants (2 columns x 4 rows per A4 portrait page).
const (
	cardPageWidth  = 210.0
	cardPageHeight = 297.0
	cardMarginTop  = 12.0
	cardMarginLeft = 10.0
	cardWidth      = 95.0
	cardHeight     = 68.0
	cardCols       = 2
	cardRows       = 4
	cardsPerPage   = cardCols * cardRows
	cardQRSize     = 32.0
	cardPadding    = 3.0
)

// Cards generates a PDF of QR-coded solution cards. Each card carries
// the solution number, its piece list, and a QR code encoding the full
// placement record as JSON.
func Cards(path string, puz *model.Puzzle, solutions []model.Solution) error {
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions to generate cards for")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, sol := range solutions {
		if i%cardsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % cardsPerPage
		col := posOnPage % cardCols
		row := posOnPage / cardCols

		x := cardMarginLeft + float64(col)*cardWidth
		y := cardMarginTop + float64(row)*cardHeight

		if err := renderCard(pdf, x, y, puz, sol, i+1); err != nil {
			return fmt.Errorf("failed to render card for solution %d: %w", i+1, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderCard draws a single solution card at the given position.
func renderCard(pdf *fpdf.Fpdf, x, y float64, puz *model.Puzzle, sol model.Solution, num int) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, cardWidth, cardHeight, "D")

	info := CardInfo{Puzzle: puz.Name, Solution: num}
	for _, placed := range sol {
		info.Pieces = append(info.Pieces, CardPlacement{
			Name:  puz.Pieces[placed.Piece].Name,
			Cells: placed.Cells.Indices(),
		})
	}

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal card info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_solution_%d", num)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + cardWidth - cardQRSize - cardPadding
	qrY := y + (cardHeight-cardQRSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, cardQRSize, cardQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + cardPadding
	textW := cardWidth - cardQRSize - 3*cardPadding

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+cardPadding)
	pdf.CellFormat(textW, 5, fmt.Sprintf("Solution %d", num), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+cardPadding+6)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%s (%dx%dx%d)", puz.Name, puz.Dim.X, puz.Dim.Y, puz.Dim.Z), "", 1, "L", false, 0, "")

	// Piece list, one line per placed piece in commit order.
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	lineY := y + cardPadding + 11
	for _, placed := range sol {
		if lineY > y+cardHeight-cardPadding-3 {
			break
		}
		piece := puz.Pieces[placed.Piece]
		line := fmt.Sprintf("%s %s", piece.Label, piece.Name)
		if pdf.GetStringWidth(line) > textW {
			for len(line) > 0 && pdf.GetStringWidth(line+"...") > textW {
				line = line[:len(line)-1]
			}
			line += "..."
		}
		pdf.SetXY(textX, lineY)
		pdf.CellFormat(textW, 3, line, "", 1, "L", false, 0, "")
		lineY += 3
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}
