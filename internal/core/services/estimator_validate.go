package services

import (
	"strings"
	"unicode"
)

const (
	customIssueMinLen = 10
	customIssueMaxLen = 500

	// Пороги не зависят от длины текста: абсолютный минимум различных
	// символов и максимальная доля самого частого
	minUniqueChars   = 5
	maxDominantShare = 0.4
)

// Ряды клавиатуры для отсечения "смазанного" ввода
var keyboardRows = []string{
	"qwertyuiop", "asdfghjkl", "zxcvbnm", "1234567890",
}

// validateCustomIssue отсекает мусорный ввод до обращения к AI:
// границы длины, повторы одного символа, клавиатурный шум,
// доля спецсимволов, наличие гласных
func validateCustomIssue(text string) error {
	trimmed := strings.TrimSpace(text)

	if len(trimmed) < customIssueMinLen || len(trimmed) > customIssueMaxLen {
		return ErrIssueTextLength
	}

	lower := strings.ToLower(trimmed)

	unique, dominant := charStats(lower)
	if unique < minUniqueChars || dominant > maxDominantShare {
		return ErrIssueTextGibberish
	}

	if keyboardMashRatio(lower) > 0.6 {
		return ErrIssueTextGibberish
	}

	if specialCharRatio(trimmed) > 0.3 {
		return ErrIssueTextGibberish
	}

	if !strings.ContainsAny(lower, "aeiou") {
		return ErrIssueTextGibberish
	}

	return nil
}

// charStats - число различных символов и доля самого частого,
// пробелы не учитываются
func charStats(text string) (int, float64) {
	counts := make(map[rune]int)
	total := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		counts[r]++
		total++
	}
	if total == 0 {
		return 0, 0
	}

	max := 0
	for _, count := range counts {
		if count > max {
			max = count
		}
	}
	return len(counts), float64(max) / float64(total)
}

// keyboardMashRatio - доля текста, покрытая последовательностями
// из соседних клавиш ("asdf", "qwer" и т.п.)
func keyboardMashRatio(text string) float64 {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	if len(compact) == 0 {
		return 0
	}

	mashed := 0
	for i := 0; i+4 <= len(compact); i++ {
		chunk := compact[i : i+4]
		for _, row := range keyboardRows {
			if strings.Contains(row, chunk) {
				mashed += 4
				break
			}
		}
	}

	ratio := float64(mashed) / float64(len(compact))
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

func specialCharRatio(text string) float64 {
	special := 0
	total := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			special++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(special) / float64(total)
}
