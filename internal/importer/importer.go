// Package importer reads puzzle definitions from CSV and Excel files.
// It supports automatic delimiter detection and collects per-row
// diagnostics instead of stopping at the first malformed record.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/bungogood/polycube/internal/model"
)

// ImportResult holds the pieces read from a puzzle file together with
// any row-contexted errors and warnings.
type ImportResult struct {
	Pieces   []model.Piece
	Errors   []string
	Warnings []string
}

// Ok reports whether the import produced a usable piece set.
func (r ImportResult) Ok() bool {
	return len(r.Errors) == 0 && len(r.Pieces) > 0
}

// A puzzle row is: name, color, shape descriptor. The color is free
// text; unrecognized colors fall back to a default at render time.
const columnsPerRow = 3

// DetectCSVDelimiter determines the most likely delimiter by scoring
// comma, semicolon, tab, and pipe on column-count consistency.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	best := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			best = delim
		}
	}
	return best
}

// ImportCSV reads pieces from a delimited text file, one row per piece.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// importFromRows is the shared parsing logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	startRow := 0
	if len(rows) > 0 && isHeaderRow(rows[0]) {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		if len(row) < columnsPerRow {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: want %d columns (name, color, shape), got %d", rowLabel, columnsPerRow, len(row)))
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			name = fmt.Sprintf("Piece %d", len(result.Pieces)+1)
		}
		color := strings.TrimSpace(row[1])

		shape, err := model.ParseShape(row[2])
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", rowLabel, err))
			continue
		}

		label := fmt.Sprintf("%X", len(result.Pieces))
		result.Pieces = append(result.Pieces, model.NewPiece(name, label, color, shape))
	}

	if len(result.Pieces) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No piece rows found")
	}
	return result
}

// isHeaderRow recognizes an optional header line naming the columns.
func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(row[0])) {
	case "name", "piece", "label":
		return true
	}
	return false
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
