package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vecgeom/internal/expr"
	"github.com/vovakirdan/vecgeom/internal/storage"
)

var (
	flagSave  bool
	flagFuncs bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate a vector expression",
	Long: `Evaluate one vector expression and print the result.

Vectors are written as parenthesized lists of two or three numbers. An
expression is a single term, or two terms joined by one operator:
  +  -  *  /  %  ==  =  +=  -=  *=  /=

Mutating operators print the left vector after the update. Run with --funcs
to list the builtin functions and constants. An expression that starts with
"-" must follow "--" so it is not read as a flag.

Examples:
  vecgeom eval "(3, 4) + (1, 1)"
  vecgeom eval -- "-(1, 2) * 3"
  vecgeom eval "mag((3, 4))"
  vecgeom eval "rotate((1, 0), pi / 2)"
  vecgeom eval "onseg((0, 0), (10, 0), (5, 0.05))" --save`,
	Run: runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&flagSave, "save", false, "Record the expression and its result in history")
	evalCmd.Flags().BoolVar(&flagFuncs, "funcs", false, "List builtin functions and constants")
	evalCmd.SetFlagErrorFunc(evalFlagError)
}

// evalFlagError points at "--" when a negated expression was parsed as a
// flag, as in `vecgeom eval "-(1, 2)"`.
func evalFlagError(_ *cobra.Command, err error) error {
	if strings.Contains(err.Error(), "-(") || strings.Contains(err.Error(), "flag: '") {
		return fmt.Errorf("%w (put expressions starting with \"-\" after \"--\", as in: vecgeom eval -- \"-(1, 2)\")", err)
	}
	return err
}

func runEval(_ *cobra.Command, args []string) {
	if flagFuncs {
		fmt.Println("Functions:")
		for _, line := range expr.Functions() {
			fmt.Println("  " + line)
		}
		fmt.Println("Constants:")
		for _, line := range expr.Constants() {
			fmt.Println("  " + line)
		}
		return
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing expression")
		os.Exit(1)
	}

	// Unquoted expressions arrive split on spaces.
	src := strings.Join(args, " ")

	result, err := expr.Eval(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result.String())

	if !flagSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if _, err := store.SaveEval(src, result.String()); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("expression saved", "expr", src)
}
