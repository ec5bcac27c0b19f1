package utils

import "testing"

func TestRoundPrice(t *testing.T) {
	cases := []struct {
		price float64
		want  int
	}{
		{1234, 1235},
		{1232, 1230},
		{1237.5, 1240},
		{5460, 5460},
		// Крупные суммы округляются до 10
		{10004, 10000},
		{10006, 10010},
		{12345, 12350},
		// Нижняя граница оценки
		{0, MinimumEstimate},
		{120, MinimumEstimate},
		{499, MinimumEstimate},
		{502.5, 505},
	}

	for _, tc := range cases {
		if got := RoundPrice(tc.price); got != tc.want {
			t.Errorf("RoundPrice(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestJitterBounds(t *testing.T) {
	const price = 1000.0
	const fraction = 0.05

	low := Jitter(price, fraction, func() float64 { return 0 })
	if low != price*(1-fraction) {
		t.Errorf("Jitter at rnd=0 = %v, want %v", low, price*(1-fraction))
	}

	mid := Jitter(price, fraction, func() float64 { return 0.5 })
	if mid != price {
		t.Errorf("Jitter at rnd=0.5 = %v, want %v", mid, price)
	}

	high := Jitter(price, fraction, func() float64 { return 0.999999 })
	if high <= price || high > price*(1+fraction) {
		t.Errorf("Jitter at rnd->1 = %v, want in (%v, %v]", high, price, price*(1+fraction))
	}
}
