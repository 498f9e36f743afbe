// booleq is an interactive toy for boolean equations: it evaluates
// expressions under partial variable assignments, searches for assignments
// forcing a desired result, and compares expressions via truth tables.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/LinusCDE/booleq/logic"
	"github.com/LinusCDE/booleq/truthtable"
	wrap "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	assignments []string
	target      bool
)

var rootCmd = &cobra.Command{
	Use:   "booleq",
	Short: "A toy for building and solving boolean equations.",
	Long: `booleq builds boolean equations from infix expressions, evaluates them under
partial variable assignments, searches backward for an assignment forcing a
desired result, and compares expressions side-by-side via truth tables.

Expressions use the operators "=" (equivalence), "->" (implication), "|",
"^" (xor), "&" and the unary "~"; "0" and "1" are the constants.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [-s name=value]... EXPR",
	Short: "Evaluate an expression under the given partial assignment.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parseExpr(args[0])
		if err != nil {
			return err
		}
		if err := assign(f); err != nil {
			return err
		}
		s, err := f.State()
		var unknown *logic.UnknownStateError
		if errors.As(err, &unknown) {
			fmt.Printf("unknown: %s\n", f)
			return nil
		} else if err != nil {
			return err
		}
		fmt.Println(bit(s))
		return nil
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve [--target=bool] [-s name=value]... EXPR",
	Short: "Search for a variable assignment forcing the expression's result.",
	Long: `solve pre-assigns the given variables, then searches depth-first for an
assignment of the remaining ones under which the expression evaluates to the
target. The first assignment found is committed and printed; it is one
possible solution, not all of them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parseExpr(args[0])
		if err != nil {
			return err
		}
		if err := assign(f); err != nil {
			return err
		}
		if err := f.SetState(target); err != nil {
			return err
		}
		for _, v := range logic.Vars(f) {
			fmt.Println(v)
		}
		return nil
	},
}

var tableCmd = &cobra.Command{
	Use:   "table EXPR [EXPR...]",
	Short: "Print the truth table of one or more expressions.",
	Long: `table discovers the union of variable names over all given expressions,
enumerates every total assignment, and prints one result column per
expression. With two or more expressions it also reports whether they are
logically equivalent.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes := make([]logic.Node, len(args))
		for i, arg := range args {
			f, err := parseExpr(arg)
			if err != nil {
				return err
			}
			nodes[i] = f
		}
		t, err := truthtable.New(nodes...)
		if err != nil {
			return err
		}
		t.Render(os.Stdout)
		if len(nodes) > 1 {
			fmt.Printf("equivalent: %t\n", t.Identical())
		}
		return nil
	},
}

func parseExpr(arg string) (logic.Node, error) {
	f, err := logic.Parse(strings.NewReader(arg))
	if err != nil {
		return nil, wrap.Wrapf(err, "could not parse expression %q", arg)
	}
	return f, nil
}

// assign applies the -s name=value pairs to every matching reachable
// variable. Names that no expression reaches are only worth a warning.
func assign(nodes ...logic.Node) error {
	vars := logic.Vars(nodes...)
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("malformed assignment %q, want name=value", a)
		}
		var state bool
		switch value {
		case "1", "true":
			state = true
		case "0", "false":
			state = false
		default:
			return fmt.Errorf("malformed assignment %q, value must be 0, 1, true or false", a)
		}
		matched := false
		for _, v := range vars {
			if v.Name() == name {
				v.Assign(state)
				matched = true
			}
		}
		if !matched {
			log.Warnf("no variable named %q reachable from the given expressions", name)
		}
	}
	return nil
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	evalCmd.Flags().StringArrayVarP(&assignments, "set", "s", nil, "assign a variable, e.g. -s x=1")
	solveCmd.Flags().StringArrayVarP(&assignments, "set", "s", nil, "assign a variable, e.g. -s x=1")
	solveCmd.Flags().BoolVar(&target, "target", true, "result the expression should be forced to")
	rootCmd.AddCommand(evalCmd, solveCmd, tableCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
