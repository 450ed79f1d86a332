// Command chebinfo compares a demonstration function against its
// Chebyshev-basis approximation.
//
// Usage:
//
//	chebinfo [flags]
//
// It approximates f(x) = sin(2*pi*x)/(2*pi) over the chosen interval, prints
// a comparison table, and reports dense-grid error statistics.
//
// Examples:
//
//	chebinfo
//	chebinfo -lower -2 -upper 2 -rows 9
//	chebinfo -strategy cosine-sum -samples 4096
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-cheb/cheb"
	"github.com/cwbudde/algo-cheb/measure/accuracy"
)

func main() {
	lower := flag.Float64("lower", -4, "interval lower bound")
	upper := flag.Float64("upper", 4, "interval upper bound")
	rows := flag.Int("rows", 17, "comparison table rows")
	samples := flag.Int("samples", 1024, "measurement grid size")
	strategy := flag.String("strategy", "sample-lagrange",
		"coefficient strategy: sample-lagrange or cosine-sum")
	flag.Parse()

	if err := run(*lower, *upper, *rows, *samples, *strategy); err != nil {
		fmt.Fprintln(os.Stderr, "chebinfo:", err)
		os.Exit(1)
	}
}

func run(lower, upper float64, rows, samples int, strategy string) error {
	var strat cheb.Strategy

	switch strategy {
	case "sample-lagrange":
		strat = cheb.StrategySampleLagrange
	case "cosine-sum":
		strat = cheb.StrategyCosineSum
	default:
		return fmt.Errorf("unknown strategy %q", strategy)
	}

	if rows < 2 {
		return fmt.Errorf("rows must be >= 2: %d", rows)
	}

	f := cheb.Func(func(x float64) float64 {
		return math.Sin(2*math.Pi*x) / (2 * math.Pi)
	})

	layout := cheb.DefaultLayout()

	ap, err := cheb.New(lower, upper, layout.Degree(), f,
		cheb.WithLayout(layout), cheb.WithStrategy(strat))
	if err != nil {
		return err
	}

	fmt.Printf("approximating sin(2*pi*x)/(2*pi) on [%g, %g], degree %d, strategy %s\n\n",
		lower, upper, ap.Degree(), strategy)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "x\tf(x)\tapprox(x)\t|error|\t")

	for i := range rows {
		x := lower + (upper-lower)*float64(i)/float64(rows-1)
		if i == rows-1 {
			x = upper
		}

		got, err := ap.Eval(x)
		if err != nil {
			return err
		}

		want, _ := f.Eval(x)
		fmt.Fprintf(w, "%+.4f\t%+.6f\t%+.6f\t%.3e\t\n", x, want, got, math.Abs(got-want))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	rep, err := accuracy.Measure(f, ap, accuracy.Config{Samples: samples})
	if err != nil {
		return err
	}

	fmt.Printf("\nmax |error| = %.3e at x = %+.4f, rms = %.3e (%d samples)\n",
		rep.MaxAbsError, rep.MaxAbsErrorX, rep.RMSError, rep.Samples)

	return nil
}
