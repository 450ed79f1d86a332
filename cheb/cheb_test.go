package cheb

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
)

func sineOverTwoPi(x float64) float64 {
	return math.Sin(2*math.Pi*x) / (2 * math.Pi)
}

func mustNew(t *testing.T, lower, upper float64, opts ...Option) *Approximator {
	t.Helper()

	ap, err := New(lower, upper, DefaultLayout().Degree(), Func(sineOverTwoPi), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return ap
}

func TestNewDefaultLayout(t *testing.T) {
	ap := mustNew(t, -4, 4)

	if got := ap.Degree(); got != 31 {
		t.Fatalf("Degree = %d, want 31", got)
	}

	if got := len(ap.Coefficients()); got != 31 {
		t.Fatalf("len(Coefficients) = %d, want 31", got)
	}

	lower, upper := ap.Bounds()
	if lower != -4 || upper != 4 {
		t.Fatalf("Bounds = [%v, %v], want [-4, 4]", lower, upper)
	}
}

func TestNewInvalidInterval(t *testing.T) {
	for _, tc := range []struct {
		name         string
		lower, upper float64
	}{
		{"reversed", 4, -4},
		{"equal", 1, 1},
		{"nan lower", math.NaN(), 1},
		{"inf upper", 0, math.Inf(1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.lower, tc.upper, 31, Func(sineOverTwoPi))
			if !errors.Is(err, ErrInvalidInterval) {
				t.Fatalf("err = %v, want ErrInvalidInterval", err)
			}
		})
	}
}

func TestNewDegreeMismatch(t *testing.T) {
	_, err := New(0, 1, 10, Func(sineOverTwoPi))
	if !errors.Is(err, ErrDegreeMismatch) {
		t.Fatalf("err = %v, want ErrDegreeMismatch", err)
	}
}

func TestNewNilFunction(t *testing.T) {
	_, err := New(0, 1, 31, nil)
	if err == nil {
		t.Fatal("expected error for nil function")
	}
}

func TestNewFunctionFailure(t *testing.T) {
	cause := errors.New("pole")
	f := FallibleFunc(func(x float64) (float64, error) {
		if x > 0 {
			return 0, cause
		}
		return 1 / (x - 5), nil
	})

	_, err := New(-4, 4, 31, f)
	if !errors.Is(err, ErrFunctionEval) {
		t.Fatalf("err = %v, want ErrFunctionEval", err)
	}

	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want wrapped cause", err)
	}

	var fe *FunctionError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %T, want *FunctionError", err)
	}

	if fe.Node < 0 || fe.Node >= 31 {
		t.Fatalf("FunctionError.Node = %d, want 0..30", fe.Node)
	}

	if fe.X < -4 || fe.X > 4 {
		t.Fatalf("FunctionError.X = %v, want inside [-4, 4]", fe.X)
	}
}

func TestEvalFiniteAcrossInterval(t *testing.T) {
	ap := mustNew(t, -4, 4)

	const n = 257
	for i := range n {
		x := -4 + 8*float64(i)/float64(n-1)

		y, err := ap.Eval(x)
		if err != nil {
			t.Fatalf("Eval(%v): %v", x, err)
		}

		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("Eval(%v) = %v, want finite", x, y)
		}
	}
}

func TestEvalIdempotent(t *testing.T) {
	ap := mustNew(t, -4, 4)

	for _, x := range []float64{-4, -1.5, 0, 0.001, 2.001, 4} {
		a, err := ap.Eval(x)
		if err != nil {
			t.Fatalf("Eval(%v): %v", x, err)
		}

		b, err := ap.Eval(x)
		if err != nil {
			t.Fatalf("Eval(%v): %v", x, err)
		}

		if a != b {
			t.Fatalf("Eval(%v) not idempotent: %v != %v", x, a, b)
		}
	}
}

func TestEvalBoundaries(t *testing.T) {
	ap := mustNew(t, -4, 4)

	if _, err := ap.Eval(-4); err != nil {
		t.Fatalf("Eval(lower): %v", err)
	}

	if _, err := ap.Eval(4); err != nil {
		t.Fatalf("Eval(upper): %v", err)
	}

	for _, x := range []float64{-4 - 1e-12, 4 + 1e-12, -5, 5, math.NaN()} {
		if _, err := ap.Eval(x); !errors.Is(err, ErrDomain) {
			t.Fatalf("Eval(%v) err = %v, want ErrDomain", x, err)
		}
	}
}

// naiveChebyshevSum evaluates 0.5*c[0] + sum_{j>=1} c[j]*T_j(y) by the
// three-term basis recurrence, as a cross-check for Clenshaw.
func naiveChebyshevSum(coeffs []float64, y float64) float64 {
	sum := 0.5 * coeffs[0]
	tPrev := 1.0
	tCur := y

	for j := 1; j < len(coeffs); j++ {
		sum += coeffs[j] * tCur
		tPrev, tCur = tCur, 2*y*tCur-tPrev
	}

	return sum
}

func TestEvalMatchesNaiveChebyshevSum(t *testing.T) {
	ap := mustNew(t, -4, 4)
	coeffs := ap.Coefficients()

	for _, x := range []float64{-4, -3.2, -1, -0.1, 0, 0.7, 2.001, 4} {
		got, err := ap.Eval(x)
		if err != nil {
			t.Fatalf("Eval(%v): %v", x, err)
		}

		y := (2*x - (-4) - 4) / (4 - (-4))
		want := naiveChebyshevSum(coeffs, y)

		eps := 1e-9 * math.Max(1, math.Abs(want))
		if diff := math.Abs(got - want); diff > eps {
			t.Fatalf("x=%v: Clenshaw %v vs naive %v (diff %v)", x, got, want, diff)
		}
	}
}

func TestEvalConcurrent(t *testing.T) {
	ap := mustNew(t, -4, 4)

	const n = 101

	serial := make([]float64, n)
	for i := range serial {
		x := -4 + 8*float64(i)/float64(n-1)

		y, err := ap.Eval(x)
		if err != nil {
			t.Fatalf("Eval(%v): %v", x, err)
		}

		serial[i] = y
	}

	var wg sync.WaitGroup

	parallel := make([]float64, n)
	for g := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := g; i < n; i += 8 {
				x := -4 + 8*float64(i)/float64(n-1)
				y, _ := ap.Eval(x)
				parallel[i] = y
			}
		}()
	}

	wg.Wait()

	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("index %d: concurrent %v != serial %v", i, parallel[i], serial[i])
		}
	}
}

func TestStrategiesProduceDifferentCoefficients(t *testing.T) {
	lagr := mustNew(t, -4, 4)
	cos := mustNew(t, -4, 4, WithStrategy(StrategyCosineSum))

	a := lagr.Coefficients()
	b := cos.Coefficients()

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}

	if same {
		t.Fatal("expected the two strategies to produce different coefficients")
	}
}

func TestCoefficientsReturnsCopy(t *testing.T) {
	ap := mustNew(t, -4, 4)

	c := ap.Coefficients()
	c[0] = math.Inf(1)

	if got := ap.Coefficients()[0]; math.IsInf(got, 1) {
		t.Fatal("Coefficients must return a defensive copy")
	}
}

func TestFuncAdapters(t *testing.T) {
	var f Evaluable = Func(func(x float64) float64 { return 2 * x })

	y, err := f.Eval(3)
	if err != nil || y != 6 {
		t.Fatalf("Func.Eval = (%v, %v), want (6, nil)", y, err)
	}

	var g Evaluable = FallibleFunc(func(x float64) (float64, error) {
		return 0, fmt.Errorf("bad point %g", x)
	})

	if _, err := g.Eval(1); err == nil {
		t.Fatal("FallibleFunc.Eval: expected error")
	}
}
