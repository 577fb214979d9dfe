package dashboarding

import "sort"

type rankedValue struct {
	value string
	count int
}

// rankByCount conta as ocorrências de cada valor e ordena por contagem decrescente.
// Empates mantêm a ordem da primeira aparição.
func rankByCount(values []string) []rankedValue {
	index := make(map[string]int)
	ranked := make([]rankedValue, 0)

	for _, v := range values {
		if i, ok := index[v]; ok {
			ranked[i].count++
			continue
		}
		index[v] = len(ranked)
		ranked = append(ranked, rankedValue{value: v, count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	return ranked
}
