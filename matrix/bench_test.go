package matrix_test

import (
	"testing"

	"github.com/Ni2M/dexpy/matrix"
)

// twoLevelDense builds the 2^k full-factorial main-effects matrix plus intercept.
func twoLevelDense(b *testing.B, k int) *matrix.Dense {
	b.Helper()
	runs := 1 << k
	cols := k + 1
	data := make([]float64, runs*cols)
	for i := 0; i < runs; i++ {
		data[i*cols] = 1
		for f := 0; f < k; f++ {
			v := -1.0
			if i&(1<<f) != 0 {
				v = 1
			}
			data[i*cols+f+1] = v
		}
	}
	d, err := matrix.NewDenseFrom(runs, cols, data)
	if err != nil {
		b.Fatalf("NewDenseFrom: %v", err)
	}

	return d
}

// BenchmarkLU_Factorial7 factors a 128×8 model matrix.
func BenchmarkLU_Factorial7(b *testing.B) {
	d := twoLevelDense(b, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.LU(d, 0); err != nil {
			b.Fatalf("LU failed: %v", err)
		}
	}
}

// BenchmarkLeastSquares_Factorial7 solves the model matrix against itself.
func BenchmarkLeastSquares_Factorial7(b *testing.B) {
	d := twoLevelDense(b, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.LeastSquares(d, d); err != nil {
			b.Fatalf("LeastSquares failed: %v", err)
		}
	}
}
