// Package export renders solve results to the console and exports them
// to PDF, Excel, and QR card formats.
package export

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bungogood/polycube/internal/model"
)

// ansiCodes maps recognized color names to ANSI foreground codes.
var ansiCodes = map[string]string{
	"black":         "30",
	"red":           "31",
	"green":         "32",
	"yellow":        "33",
	"blue":          "34",
	"magenta":       "35",
	"purple":        "35",
	"cyan":          "36",
	"white":         "37",
	"bright black":  "90",
	"bright red":    "91",
	"bright green":  "92",
	"bright yellow": "93",
	"bright blue":   "94",
	"bright purple": "95",
	"bright cyan":   "96",
	"bright white":  "97",
}

// defaultColorCode is used for unrecognized color labels.
const defaultColorCode = "91" // bright red

// Colorize wraps text in the ANSI escape for the named color, falling
// back to the default when the name is unrecognized.
func Colorize(text, color string) string {
	code, ok := ansiCodes[strings.ToLower(strings.TrimSpace(color))]
	if !ok {
		code = defaultColorCode
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

// FormatArrangement renders the volume as row-by-row text grids, one
// grid per z layer laid out side by side, top y row first. Occupied
// cells show the owning piece's label; empty cells show a dot.
func FormatArrangement(puz *model.Puzzle, arr *model.Arrangement, colorize bool) string {
	var sb strings.Builder
	for y := puz.Dim.Y - 1; y >= 0; y-- {
		for z := 0; z < puz.Dim.Z; z++ {
			for x := 0; x < puz.Dim.X; x++ {
				idx := puz.Index(model.Coord{X: x, Y: y, Z: z})
				pid := puz.PieceAt(arr, idx)
				if pid < 0 {
					sb.WriteString(". ")
					continue
				}
				piece := puz.Pieces[pid]
				label := piece.Label
				if colorize {
					label = Colorize(label, piece.Color)
				}
				sb.WriteString(label)
				sb.WriteByte(' ')
			}
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatBitset renders a raw occupancy mask in the same layer layout,
// with X for set bits. Useful when debugging placements.
func FormatBitset(puz *model.Puzzle, b model.Bitset) string {
	var sb strings.Builder
	for y := puz.Dim.Y - 1; y >= 0; y-- {
		for z := 0; z < puz.Dim.Z; z++ {
			for x := 0; x < puz.Dim.X; x++ {
				if b.Get(puz.Index(model.Coord{X: x, Y: y, Z: z})) {
					sb.WriteString("X ")
				} else {
					sb.WriteString(". ")
				}
			}
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var englishPrinter = message.NewPrinter(language.English)

// Summary formats the end-of-search report line with thousands
// separators on the large counters.
func Summary(solutions, explored int, elapsed time.Duration) string {
	rate := time.Duration(0)
	if solutions > 0 {
		rate = elapsed / time.Duration(solutions)
	}
	return englishPrinter.Sprintf("Solutions: %d Explored: %d Time: %s [rate %s per solution]",
		solutions, explored, elapsed.Round(time.Millisecond), rate.Round(time.Microsecond))
}

// Progress formats the per-solution line printed in verbose mode.
func Progress(solutions, explored int, elapsed time.Duration) string {
	rate := elapsed / time.Duration(solutions)
	return englishPrinter.Sprintf("Solutions: %d Explored: %d [rate %s per solution]",
		solutions, explored, rate.Round(time.Microsecond))
}

// FormatSolution renders a recorded solution in the layer layout of
// FormatArrangement.
func FormatSolution(puz *model.Puzzle, sol model.Solution, colorize bool) string {
	return FormatArrangement(puz, arrangementFor(puz, sol), colorize)
}

// arrangementFor rebuilds an arrangement from a recorded solution so
// the renderers can be reused for stored results.
func arrangementFor(puz *model.Puzzle, sol model.Solution) *model.Arrangement {
	arr := model.NewArrangement(puz.CellCount())
	for _, placed := range sol {
		arr.Push(placed.Piece, placed.Cells)
	}
	return arr
}

// shapeDescriptor formats a piece's base cells back into the puzzle
// file's 3-digit code form, e.g. "000-100-110".
func shapeDescriptor(shape model.Orientation) string {
	codes := make([]string, len(shape.Cells))
	for i, c := range shape.Cells {
		codes[i] = fmt.Sprintf("%d%d%d", c.X, c.Y, c.Z)
	}
	return strings.Join(codes, "-")
}
