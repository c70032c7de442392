// SPDX-License-Identifier: MIT

package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicks(t *testing.T) {
	for _, tc := range []struct {
		name   string
		s      linearScale
		m      int
		labels []string
	}{
		{name: "0..100", s: linearScale{d0: 0, d1: 100}, m: 10, labels: []string{"0", "10", "20", "30", "40", "50", "60", "70", "80", "90", "100"}},
		{name: "0..2", s: linearScale{d0: 0, d1: 2}, m: 7, labels: []string{"0.0", "0.5", "1.0", "1.5", "2.0"}},
		{name: "reversed", s: linearScale{d0: 1, d1: -1}, m: 4, labels: []string{"-1.0", "-0.5", "0.0", "0.5", "1.0"}},
		{name: "fractional", s: linearScale{d0: 0.12, d1: 0.48}, m: 3, labels: []string{"0.2", "0.3", "0.4"}},
		{name: "flat", s: linearScale{d0: 3, d1: 3}, m: 7, labels: []string{"3"}},
		{name: "none", s: linearScale{d0: 0, d1: 1}, m: 0, labels: nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ticks, step := tc.s.ticks(tc.m)
			var got []string
			for _, v := range ticks {
				got = append(got, formatTick(v, step))
			}
			assert.Equal(t, tc.labels, got)
		})
	}
}

func TestLinearScale_At(t *testing.T) {
	s := linearScale{d0: 10, d1: 0, r0: 0, r1: 100}
	assert.InDelta(t, 0, s.at(10), 1e-12)
	assert.InDelta(t, 100, s.at(0), 1e-12)
	assert.InDelta(t, 25, s.at(7.5), 1e-12)
	assert.Equal(t, 5.0, linearScale{d0: 1, d1: 1, r0: 5, r1: 9}.at(1))
}

func TestNum(t *testing.T) {
	assert.Equal(t, "0", num(-0.001))
	assert.Equal(t, "1.23", num(1.2345))
	assert.Equal(t, "-7.5", num(-7.5))
}
