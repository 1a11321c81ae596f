package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	laurent "github.com/jonathanmweiss/go-laurent"
	"github.com/jonathanmweiss/go-laurent/ring"
)

// The calculator works over the rationals so that evaluation at points and
// exact division never fall outside the coefficient ring.
func ratRing() *laurent.Ring[*big.Rat] {
	return laurent.NewRing[*big.Rat](ring.NewRationals(), "x")
}

func parseArgs(r *laurent.Ring[*big.Rat], args []string) ([]*laurent.Polynomial[*big.Rat], error) {
	out := make([]*laurent.Polynomial[*big.Rat], len(args))
	for i, arg := range args {
		p, err := laurent.Parse(r, arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, arg)
		}

		logrus.Debugf("parsed %q as %v", arg, p)
		out[i] = p
	}

	return out, nil
}

func binaryCmd(use, short string, op func(a, b *laurent.Polynomial[*big.Rat]) (*laurent.Polynomial[*big.Rat], error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <expr> <expr>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parseArgs(ratRing(), args)
			if err != nil {
				return err
			}

			res, err := op(ps[0], ps[1])
			if err != nil {
				return err
			}

			fmt.Println(res)

			return nil
		},
	}
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr> <point>",
		Short: "evaluate a Laurent polynomial at a rational point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := ratRing()

			p, err := laurent.Parse(r, args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}

			x, ok := new(big.Rat).SetString(args[1])
			if !ok {
				return errors.New("invalid evaluation point")
			}

			val, err := p.Evaluate(x)
			if err != nil {
				return err
			}

			fmt.Println(val.RatString())

			return nil
		},
	}
}

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "laurent",
		Short:         "Laurent polynomial calculator over the rationals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		binaryCmd("add", "add two Laurent polynomials", func(a, b *laurent.Polynomial[*big.Rat]) (*laurent.Polynomial[*big.Rat], error) {
			return a.Add(b), nil
		}),
		binaryCmd("mul", "multiply two Laurent polynomials", func(a, b *laurent.Polynomial[*big.Rat]) (*laurent.Polynomial[*big.Rat], error) {
			return a.Mul(b), nil
		}),
		binaryCmd("div", "exactly divide two Laurent polynomials", func(a, b *laurent.Polynomial[*big.Rat]) (*laurent.Polynomial[*big.Rat], error) {
			return a.ExactDiv(b, true)
		}),
		binaryCmd("gcd", "greatest common divisor of two Laurent polynomials", func(a, b *laurent.Polynomial[*big.Rat]) (*laurent.Polynomial[*big.Rat], error) {
			return a.Gcd(b)
		}),
		evalCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
