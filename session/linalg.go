// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcalc/format"
	"github.com/katalvlaran/lvcalc/matrix"
	"github.com/katalvlaran/lvcalc/vector"
)

// plainRows echoes user-entered rows without rounding.
func plainRows(rows [][]float64) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = plainVector(r)
	}

	return strings.Join(lines, "\n")
}

func plainVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = plain(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Determinant computes det of a 2×2 or 3×3 matrix.
func (s *Session) Determinant(rows [][]float64) Outcome {
	return s.run("det", func() (Outcome, error) {
		m, err := matrix.NewFromRows(rows)
		if err != nil {
			return Outcome{}, err
		}
		det, err := matrix.Determinant(m)
		if err != nil {
			return Outcome{}, err
		}
		v, err := format.Format(det)
		if err != nil {
			return Outcome{}, err
		}
		s.hist.Add("Det = " + v)

		return Outcome{Display: v, Detail: fmt.Sprintf("Matrix:\n%s\n\nDeterminant = %s", plainRows(rows), v)}, nil
	})
}

// Inverse inverts a 2×2 matrix.
func (s *Session) Inverse(rows [][]float64) Outcome {
	return s.run("inverse", func() (Outcome, error) {
		m, err := matrix.NewFromRows(rows)
		if err != nil {
			return Outcome{}, err
		}
		inv, err := matrix.Inverse(m)
		if err != nil {
			return Outcome{}, err
		}
		body, err := format.Rows(inv.RawRows())
		if err != nil {
			return Outcome{}, err
		}
		s.hist.Add("Matrix inverse calculated")

		return Outcome{
			Display: strings.ReplaceAll(body, "\n", " "),
			Detail:  fmt.Sprintf("Original Matrix:\n%s\n\nInverse Matrix:\n%s", plainRows(rows), body),
		}, nil
	})
}

// Transpose transposes a 2×2 or 3×3 matrix.
func (s *Session) Transpose(rows [][]float64) Outcome {
	return s.run("transpose", func() (Outcome, error) {
		m, err := matrix.NewFromRows(rows)
		if err != nil {
			return Outcome{}, err
		}
		t, err := matrix.Transpose(m)
		if err != nil {
			return Outcome{}, err
		}
		body := plainRows(t.RawRows())
		s.hist.Add("Matrix transposed")

		return Outcome{
			Display: strings.ReplaceAll(body, "\n", " "),
			Detail:  fmt.Sprintf("Original Matrix:\n%s\n\nTransposed Matrix:\n%s", plainRows(rows), body),
		}, nil
	})
}

// Multiply computes A × B.
func (s *Session) Multiply(a, b [][]float64) Outcome {
	return s.run("multiply", func() (Outcome, error) {
		ma, err := matrix.NewFromRows(a)
		if err != nil {
			return Outcome{}, err
		}
		mb, err := matrix.NewFromRows(b)
		if err != nil {
			return Outcome{}, err
		}
		prod, err := matrix.Mul(ma, mb)
		if err != nil {
			return Outcome{}, err
		}
		body, err := format.Rows(prod.RawRows())
		if err != nil {
			return Outcome{}, err
		}
		s.hist.Add("Matrices multiplied")

		return Outcome{Display: strings.ReplaceAll(body, "\n", " "), Detail: "A × B =\n" + body}, nil
	})
}

// Magnitude computes |v|.
func (s *Session) Magnitude(v []float64) Outcome {
	return s.run("magnitude", func() (Outcome, error) {
		m, err := vector.Magnitude(v)
		if err != nil {
			return Outcome{}, err
		}
		out, err := format.Format(m)
		if err != nil {
			return Outcome{}, err
		}
		squares := make([]string, len(v))
		for i, x := range v {
			squares[i] = plain(x) + "²"
		}
		s.hist.Add("|v| = " + out)

		return Outcome{
			Display: out,
			Detail:  fmt.Sprintf("Vector: %s\n|v| = √(%s)\n|v| = %s", plainVector(v), strings.Join(squares, " + "), out),
		}, nil
	})
}

// Dot computes u · v.
func (s *Session) Dot(u, v []float64) Outcome {
	return s.run("dot", func() (Outcome, error) {
		d, err := vector.Dot(u, v)
		if err != nil {
			return Outcome{}, err
		}
		out, err := format.Format(d)
		if err != nil {
			return Outcome{}, err
		}
		s.hist.Add("u · v = " + out)

		return Outcome{Display: out, Detail: fmt.Sprintf("u = %s\nv = %s\nu · v = %s", plainVector(u), plainVector(v), out)}, nil
	})
}

// Cross computes u × v for 3D vectors.
func (s *Session) Cross(u, v []float64) Outcome {
	return s.run("cross", func() (Outcome, error) {
		c, err := vector.Cross(u, v)
		if err != nil {
			return Outcome{}, err
		}
		out, err := format.Vector(c)
		if err != nil {
			return Outcome{}, err
		}
		s.hist.Add("u × v = " + out)

		return Outcome{Display: out, Detail: fmt.Sprintf("u = %s\nv = %s\nu × v = %s", plainVector(u), plainVector(v), out)}, nil
	})
}

// Angle computes the angle between u and v in the session's vector unit.
func (s *Session) Angle(u, v []float64) Outcome {
	return s.run("angle", func() (Outcome, error) {
		a, err := vector.Angle(u, v, s.vector)
		if err != nil {
			return Outcome{}, err
		}
		out, err := format.Format(a)
		if err != nil {
			return Outcome{}, err
		}
		shown := out + s.vector.Suffix()
		s.hist.Add("θ = " + shown)

		return Outcome{Display: shown, Detail: fmt.Sprintf("u = %s\nv = %s\nθ = %s", plainVector(u), plainVector(v), shown)}, nil
	})
}
