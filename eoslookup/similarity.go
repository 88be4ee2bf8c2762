package eoslookup

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Strategy именованная стратегия приближенного сравнения строк.
// Все стратегии возвращают оценку сходства на шкале 0-100.
type Strategy string

const (
	// StrategyTokenSort сравнение, нечувствительное к порядку токенов:
	// "linux red hat" и "red hat linux" считаются эквивалентными
	StrategyTokenSort Strategy = "token_sort"

	// StrategyRatio простое отношение на основе редакционного расстояния
	StrategyRatio Strategy = "ratio"
)

// Similarity вычисляет сходство строк по выбранной стратегии.
// Неизвестная стратегия дает 0: совпадение лучше потерять, чем выдумать.
func Similarity(a, b string, strategy Strategy) int {
	switch strategy {
	case StrategyTokenSort:
		return fuzzy.TokenSortRatio(a, b)
	case StrategyRatio:
		return fuzzy.Ratio(a, b)
	default:
		return 0
	}
}
