package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/bungogood/polycube/internal/model"
)

// SolveReport is the JSON record of one completed search run.
type SolveReport struct {
	Puzzle    string           `json:"puzzle"`
	Dim       model.Coord      `json:"dim"`
	Solutions []ReportSolution `json:"solutions"`
	Explored  int              `json:"explored"`
	ElapsedMS int64            `json:"elapsed_ms"`
	CreatedAt time.Time        `json:"created_at"`
}

// ReportSolution lists the placements of one solution in commit order.
type ReportSolution struct {
	Pieces []ReportPlacement `json:"pieces"`
}

// ReportPlacement records one placed piece by name and occupied cells.
type ReportPlacement struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Cells []int  `json:"cells"`
}

// NewSolveReport builds a report from a finished search.
func NewSolveReport(puz *model.Puzzle, solutions []model.Solution, explored int, elapsed time.Duration) SolveReport {
	report := SolveReport{
		Puzzle:    puz.Name,
		Dim:       puz.Dim,
		Explored:  explored,
		ElapsedMS: elapsed.Milliseconds(),
		CreatedAt: time.Now(),
		Solutions: []ReportSolution{},
	}
	for _, sol := range solutions {
		rs := ReportSolution{}
		for _, placed := range sol {
			piece := puz.Pieces[placed.Piece]
			rs.Pieces = append(rs.Pieces, ReportPlacement{
				Name:  piece.Name,
				Label: piece.Label,
				Cells: placed.Cells.Indices(),
			})
		}
		report.Solutions = append(report.Solutions, rs)
	}
	return report
}

// SaveSolveReport persists a report to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveSolveReport(path string, report SolveReport) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSolveReport reads a report back from disk.
func LoadSolveReport(path string) (SolveReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SolveReport{}, err
	}
	var report SolveReport
	if err := json.Unmarshal(data, &report); err != nil {
		return SolveReport{}, err
	}
	return report, nil
}
