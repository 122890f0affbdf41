package similarity

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a symmetric pairwise-similarity matrix. NaN marks a pair whose
// score could not be measured; every aggregate skips NaN entries.
type Matrix struct {
	n   int
	sym *mat.SymDense
}

func NewMatrix(n int) *Matrix {
	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.NaN()
	}
	return &Matrix{n: n, sym: mat.NewSymDense(n, data)}
}

func (m *Matrix) Size() int {
	return m.n
}

// SetPair stores a score for (i, j) and its mirror (j, i).
func (m *Matrix) SetPair(i, j int, v float64) {
	m.sym.SetSym(i, j, v)
}

func (m *Matrix) At(i, j int) float64 {
	return m.sym.At(i, j)
}

// RowMean averages the valid entries of row i, excluding the diagonal.
// Returns the mean and the number of valid entries; a row with no valid
// entries yields (0, 0) so the output column stays numeric.
func (m *Matrix) RowMean(i int) (float64, int) {
	var sum float64
	var count int
	for j := 0; j < m.n; j++ {
		if j == i {
			continue
		}
		v := m.sym.At(i, j)
		if math.IsNaN(v) {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return sum / float64(count), count
}

// UpperMean averages the valid entries of the strict upper triangle.
func (m *Matrix) UpperMean() float64 {
	var sum float64
	var count int
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			v := m.sym.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
