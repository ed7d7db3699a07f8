// Command boolexpr is a small command-line front end over the boolexpr
// engine: parse, simplify, and lower a single expression given on the
// command line, grounded on the cobra-based CLI conventions used across
// the example pack (e.g. opal-lang-opal/cli's rootCmd/RunE/PersistentFlags
// shape) rather than anything in the teacher repo, which ships no cmd/.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/xDarkicex/boolexpr"
	"github.com/xDarkicex/boolexpr/cnf"
	"github.com/xDarkicex/boolexpr/internal/telemetry"
	"github.com/xDarkicex/boolexpr/node"
	"github.com/xDarkicex/boolexpr/transform"
	"github.com/xDarkicex/boolexpr/tseitin"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "boolexpr",
		Short:         "Parse and transform Boolean expressions",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable trace logging to stderr")

	root.AddCommand(
		newParseCmd(),
		newSimplifyCmd(),
		newNNFCmd(),
		newCNFCmd(),
		newDNFCmd(),
		newTseitinCmd(),
		newDimacsCmd(),
		newTableCmd(),
	)
	return root
}

// newEngine builds an Engine for one CLI invocation, attaching an hclog
// logger to the arena when -v is set.
func newEngine() *boolexpr.Engine {
	if !verbose {
		return boolexpr.New()
	}
	l := hclog.New(&hclog.LoggerOptions{Name: "boolexpr", Level: hclog.Trace})
	return boolexpr.New(node.WithLogger(telemetry.Wrap(l)))
}

func parseArg(e *boolexpr.Engine, expr string) (*node.Node, error) {
	n, err := e.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return n, nil
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <expr>",
		Short: "Parse an expression and print its infix and tree form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine()
			n, err := parseArg(e, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Infix(n))
			fmt.Fprint(cmd.OutOrStdout(), e.Tree(n))
			return nil
		},
	}
}

func newSimplifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <expr>",
		Short: "Parse and algebraically simplify an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine()
			n, err := parseArg(e, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Infix(transform.Simplify(e.Arena(), n)))
			return nil
		},
	}
}

func newNNFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nnf <expr>",
		Short: "Parse and convert an expression to negation normal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine()
			n, err := parseArg(e, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Infix(transform.ToNNF(e.Arena(), n)))
			return nil
		},
	}
}

func newCNFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cnf <expr>",
		Short: "Parse and convert an expression to conjunctive normal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine()
			n, err := parseArg(e, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Infix(transform.ToCNF(e.Arena(), n)))
			return nil
		},
	}
}

func newDNFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dnf <expr>",
		Short: "Parse and convert an expression to disjunctive normal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine()
			n, err := parseArg(e, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Infix(transform.ToDNF(e.Arena(), n)))
			return nil
		},
	}
}

func newTseitinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tseitin <expr>",
		Short: "Tseitin-encode an expression into an equisatisfiable CNF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine()
			n, err := parseArg(e, args[0])
			if err != nil {
				return err
			}
			newVar := func() *node.Node {
				return e.Universe().GetNextVar("t").PosLit()
			}
			topLit, constraints := tseitin.Encode(e.Arena(), n, newVar)
			cnfExpr := tseitin.ToCNF(e.Arena(), topLit, constraints)
			fmt.Fprintln(cmd.OutOrStdout(), e.Infix(cnfExpr))
			for _, c := range constraints {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s <-> %s\n", e.Infix(c.Aux), e.Infix(c.Sub))
			}
			return nil
		},
	}
}

var dimacsSAT bool

func newDimacsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "dimacs <expr>",
		Short: "Encode an expression to DIMACS CNF (or, with --sat, DIMACS SAT prefix notation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine()
			n, err := parseArg(e, args[0])
			if err != nil {
				return err
			}
			if dimacsSAT {
				litmap, nvars := cnf.EncodeInputs(e.Arena(), n)
				byNode := make(map[*node.Node]int, len(litmap))
				for idx, lit := range litmap {
					byNode[lit] = idx
				}
				fmt.Fprint(cmd.OutOrStdout(), cnf.DimacsSAT(n, nvars, byNode))
				return nil
			}
			lowered := transform.ToCNF(e.Arena(), n)
			nf, _, err := cnf.EncodeCNF(e.Arena(), lowered)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cnf.DimacsCNF(nf))
			return nil
		},
	}
	c.Flags().BoolVar(&dimacsSAT, "sat", false, "emit DIMACS SAT prefix notation instead of lowering to CNF")
	return c
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <expr>",
		Short: "Print the truth table of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := newEngine()
			n, err := parseArg(e, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), e.TruthTable(n).String())
			return nil
		},
	}
}
