package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"sudoku-graph/internal/parse"
	"sudoku-graph/internal/sudoku/graph"
	"sudoku-graph/pkg/constants"
)

// Exit codes: only these are a contract, per the spec.
const (
	exitSolved        = 0
	exitArgError      = 1
	exitUnsatisfiable = 2
)

var rootCmd = &cobra.Command{
	Use:   "solve <file> [charset]",
	Short: "Solve a sudoku puzzle from a text grid using the constraint-graph technique pipeline",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSolve,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitArgError)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		exitWith(cmd, exitArgError, "solve: %v", err)
		return nil
	}
	defer f.Close()

	magnitude, values, err := parse.NewTextParser().Parse(f)
	if err != nil {
		exitWith(cmd, exitArgError, "solve: %v", err)
		return nil
	}

	// An explicit charset declares the expected radix (m^2+1); it must
	// match what the file actually parsed to, or the grid and the caller's
	// expectation disagree.
	if len(args) == 2 {
		charset, err := strconv.Atoi(args[1])
		if err != nil || charset < 2 || charset > constants.MaxRadix {
			exitWith(cmd, exitArgError, "solve: charset must be an integer in [2,%d]", constants.MaxRadix)
			return nil
		}
		if want := constants.SideLength(magnitude) + 1; charset != want {
			exitWith(cmd, exitArgError, "solve: charset %d does not match the parsed puzzle's radix %d", charset, want)
			return nil
		}
	}

	p, err := graph.NewPuzzle(magnitude, values)
	if err != nil {
		exitWith(cmd, exitArgError, "solve: %v", err)
		return nil
	}

	registry := graph.NewTechniqueRegistry()
	driver := graph.NewDriverFromRegistry(registry, nil)

	result, err := driver.Run(context.Background(), p)
	if err != nil && !errors.Is(err, graph.ErrUnsatisfiable) {
		exitWith(cmd, exitArgError, "solve: %v", err)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), p.String())

	if unsat, _ := p.Unsatisfiable(); unsat || result.Status == constants.StatusUnsatisfiable {
		os.Exit(exitUnsatisfiable)
	}
	os.Exit(exitSolved)
	return nil
}

func exitWith(cmd *cobra.Command, code int, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	os.Exit(code)
}
