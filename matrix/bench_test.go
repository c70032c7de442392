// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mds/matrix"
)

// benchSymmetric returns a deterministic n×n symmetric matrix.
func benchSymmetric(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.Float64()
			_ = m.Set(i, j, v)
			_ = m.Set(j, i, v)
		}
	}

	return m
}

func benchmarkSVD(b *testing.B, n int) {
	m := benchSymmetric(b, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.SVD(m); err != nil {
			b.Fatalf("SVD: %v", err)
		}
	}
}

func BenchmarkSVD_32(b *testing.B)  { benchmarkSVD(b, 32) }
func BenchmarkSVD_128(b *testing.B) { benchmarkSVD(b, 128) }

func BenchmarkDoubleCenter_256(b *testing.B) {
	m := benchSymmetric(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.DoubleCenter(m); err != nil {
			b.Fatalf("DoubleCenter: %v", err)
		}
	}
}
