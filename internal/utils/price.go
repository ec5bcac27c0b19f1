package utils

import "math"

// MinimumEstimate - нижняя граница любой оценки в PHP
const MinimumEstimate = 500

// RoundPrice округляет цену до ближайших 5 песо, крупные суммы - до 10,
// чтобы число не выглядело машинным
func RoundPrice(price float64) int {
	step := 5.0
	if price >= 10000 {
		step = 10.0
	}

	rounded := int(math.Round(price/step) * step)
	if rounded < MinimumEstimate {
		return MinimumEstimate
	}
	return rounded
}

// Jitter возвращает price со случайным отклонением в пределах +-fraction.
// rnd должен вернуть значение из [0, 1)
func Jitter(price float64, fraction float64, rnd func() float64) float64 {
	offset := (rnd()*2 - 1) * fraction
	return price * (1 + offset)
}
