// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcalc/format"
	"github.com/katalvlaran/lvcalc/stats"
)

// Statistic names one statistics-panel button.
type Statistic string

// Statistics-panel buttons.
const (
	StatMean      Statistic = "mean"
	StatMedian    Statistic = "median"
	StatStdDev    Statistic = "stddev"
	StatVariance  Statistic = "variance"
	StatSum       Statistic = "sum"
	StatCount     Statistic = "count"
	StatQuartiles Statistic = "quartiles"
	StatSkewness  Statistic = "skewness"
	StatKurtosis  Statistic = "kurtosis"
	StatDescribe  Statistic = "describe"
)

// Statistics lists every Statistic in panel order.
func Statistics() []Statistic {
	return []Statistic{
		StatMean, StatMedian, StatStdDev, StatVariance, StatSum, StatCount,
		StatQuartiles, StatSkewness, StatKurtosis, StatDescribe,
	}
}

// scalarStats maps single-valued statistics to their function and history label.
var scalarStats = map[Statistic]struct {
	label string
	fn    func([]float64) (float64, error)
}{
	StatMean:     {"Mean", stats.Mean},
	StatMedian:   {"Median", stats.Median},
	StatStdDev:   {"Std Dev", stats.StdDev},
	StatVariance: {"Variance", stats.Variance},
	StatSum:      {"Sum", stats.Sum},
	StatSkewness: {"Skewness", stats.Skewness},
	StatKurtosis: {"Kurtosis", stats.Kurtosis},
}

// Stats computes one statistic of xs. The accumulator is not touched.
func (s *Session) Stats(which Statistic, xs []float64) Outcome {
	return s.run("stats_"+string(which), func() (Outcome, error) {
		if e, ok := scalarStats[which]; ok {
			v, err := e.fn(xs)
			if err != nil {
				return Outcome{}, err
			}
			out, err := format.Format(v)
			if err != nil {
				return Outcome{}, err
			}
			s.hist.Add(e.label + " = " + out)

			return Outcome{Display: out}, nil
		}

		switch which {
		case StatCount:
			n, err := stats.Count(xs)
			if err != nil {
				return Outcome{}, err
			}
			out := fmt.Sprint(n)
			s.hist.Add("Count = " + out)

			return Outcome{Display: out}, nil
		case StatQuartiles:
			q, err := stats.QuartilesOf(xs)
			if err != nil {
				return Outcome{}, err
			}
			disp := fmt.Sprintf("Q1=%s, Q3=%s", format.Display(q.Q1), format.Display(q.Q3))
			s.hist.Add("Quartiles: " + disp)
			detail := fmt.Sprintf("Q1 = %s\nQ2 (Median) = %s\nQ3 = %s\nIQR = %s",
				format.Display(q.Q1), format.Display(q.Q2), format.Display(q.Q3), format.Display(q.IQR))

			return Outcome{Display: disp, Detail: detail}, nil
		case StatDescribe:
			return s.describe(xs)
		}

		return Outcome{}, fmt.Errorf("statistic %q: %w", which, ErrUnknownFunction)
	})
}

func (s *Session) describe(xs []float64) (Outcome, error) {
	d, err := stats.Describe(xs)
	if err != nil {
		return Outcome{}, err
	}
	for _, v := range []float64{d.Sum, d.Mean, d.Variance} {
		if _, err = format.Format(v); err != nil {
			return Outcome{}, err
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Count = %d\n", d.Count)
	fmt.Fprintf(&b, "Sum = %s\n", format.Display(d.Sum))
	fmt.Fprintf(&b, "Mean = %s\n", format.Display(d.Mean))
	fmt.Fprintf(&b, "Median = %s\n", format.Display(d.Median))
	fmt.Fprintf(&b, "Variance = %s\n", format.Display(d.Variance))
	fmt.Fprintf(&b, "Std Dev = %s\n", format.Display(d.StdDev))
	fmt.Fprintf(&b, "Q1 = %s, Q3 = %s, IQR = %s\n",
		format.Display(d.Quartiles.Q1), format.Display(d.Quartiles.Q3), format.Display(d.Quartiles.IQR))
	if d.Degenerate {
		b.WriteString("Skewness, Kurtosis: undefined (zero standard deviation)")
	} else {
		fmt.Fprintf(&b, "Skewness = %s\nKurtosis = %s", format.Display(d.Skewness), format.Display(d.Kurtosis))
	}

	disp := fmt.Sprintf("n=%d, mean=%s, sd=%s", d.Count, format.Display(d.Mean), format.Display(d.StdDev))
	s.hist.Add("Summary: " + disp)

	return Outcome{Display: disp, Detail: b.String()}, nil
}
