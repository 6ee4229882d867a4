// Command polycube solves polycube packing puzzles. It reads a piece
// set from a CSV or Excel file, infers the cubic target volume, and
// runs an exhaustive backtracking search, rendering solutions to the
// console and optionally to PDF, Excel, or QR card exports.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bungogood/polycube/internal/engine"
	"github.com/bungogood/polycube/internal/export"
	"github.com/bungogood/polycube/internal/importer"
	"github.com/bungogood/polycube/internal/model"
	"github.com/bungogood/polycube/internal/project"
)

var (
	flagVerbose      bool
	flagMaxSolutions int
	flagNoColor      bool
	flagPDF          string
	flagXLSX         string
	flagCards        string
	flagReport       string
)

var rootCmd = &cobra.Command{
	Use:   "polycube <puzzle-file>",
	Short: "Exhaustive solver for polycube packing puzzles",
	Long: `polycube packs a set of polycube pieces into the cubic volume their
total cell count implies, reporting every distinct solution up to the
symmetry of the first committed piece.

Puzzle files are CSV (or Excel) with one piece per row:

    name, color, shape

where shape is a dash-separated list of 3-digit xyz cell codes, e.g.
000-100-110 for an L-tromino.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print each solution as it is found")
	rootCmd.Flags().IntVarP(&flagMaxSolutions, "max-solutions", "n", 0, "stop after this many solutions (0 = exhaustive)")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable ANSI colors in console output")
	rootCmd.Flags().StringVar(&flagPDF, "pdf", "", "write a PDF solution report to this path")
	rootCmd.Flags().StringVar(&flagXLSX, "xlsx", "", "write an Excel workbook to this path")
	rootCmd.Flags().StringVar(&flagCards, "cards", "", "write QR solution cards (PDF) to this path")
	rootCmd.Flags().StringVar(&flagReport, "report", "", "save a JSON solve report to this path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := args[0]

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot read config: %v\n", err)
		config = model.DefaultAppConfig()
	}
	if !cmd.Flags().Changed("verbose") {
		flagVerbose = config.DefaultVerbose
	}
	if !cmd.Flags().Changed("max-solutions") {
		flagMaxSolutions = config.DefaultMaxSolutions
	}
	colorize := config.ColorOutput && !flagNoColor

	puz, err := loadPuzzle(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d pieces, %dx%dx%d volume\n",
		puz.Name, len(puz.Pieces), puz.Dim.X, puz.Dim.Y, puz.Dim.Z)

	start := time.Now()
	found := 0
	solver := engine.New(engine.Settings{
		MaxSolutions: flagMaxSolutions,
		OnSolution: func(sol model.Solution, explored int) {
			found++
			if !flagVerbose {
				return
			}
			fmt.Println(export.FormatSolution(puz, sol, colorize))
			fmt.Println(export.Progress(found, explored, time.Since(start)))
		},
	})
	result := solver.Solve(puz)

	fmt.Println(export.Summary(len(result.Solutions), result.Explored, result.Duration))

	if err := writeExports(puz, result); err != nil {
		return err
	}

	config.RememberPuzzle(path)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot save config: %v\n", err)
	}
	return nil
}

// loadPuzzle imports the piece set by file extension and assembles the
// puzzle, reporting import diagnostics to stderr.
func loadPuzzle(path string) (*model.Puzzle, error) {
	var result importer.ImportResult
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		result = importer.ImportExcel(path)
	} else {
		result = importer.ImportCSV(path)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if !result.Ok() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "Error: %s\n", e)
		}
		return nil, fmt.Errorf("cannot import puzzle from %s", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return model.NewPuzzle(name, result.Pieces)
}

// writeExports runs each requested export flag against the result.
func writeExports(puz *model.Puzzle, result engine.Result) error {
	if flagPDF != "" {
		if err := export.PDF(flagPDF, puz, result.Solutions, result.Explored, result.Duration); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
		fmt.Printf("Wrote %s\n", flagPDF)
	}
	if flagXLSX != "" {
		if err := export.Excel(flagXLSX, puz, result.Solutions, result.Explored, result.Duration); err != nil {
			return fmt.Errorf("excel export: %w", err)
		}
		fmt.Printf("Wrote %s\n", flagXLSX)
	}
	if flagCards != "" {
		if err := export.Cards(flagCards, puz, result.Solutions); err != nil {
			return fmt.Errorf("card export: %w", err)
		}
		fmt.Printf("Wrote %s\n", flagCards)
	}
	if flagReport != "" {
		report := project.NewSolveReport(puz, result.Solutions, result.Explored, result.Duration)
		if err := project.SaveSolveReport(flagReport, report); err != nil {
			return fmt.Errorf("report: %w", err)
		}
		fmt.Printf("Wrote %s\n", flagReport)
	}
	return nil
}
