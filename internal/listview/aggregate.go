package listview

// Number covers the amount types summed by Sum.
type Number interface {
	~int | ~int64 | ~float64
}

// Sum adds amount(item) across items. The sum over no items is zero.
func Sum[T any, N Number](items []T, amount func(T) N) N {
	var total N
	for _, item := range items {
		total += amount(item)
	}
	return total
}

// CountWhere counts the items satisfying pred.
func CountWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// CountByStatus tallies items per status. Statuses absent from items are
// absent from the map; indexing them yields zero.
func CountByStatus[T any, S Status](items []T, status func(T) S) map[S]int {
	counts := make(map[S]int)
	for _, item := range items {
		counts[status(item)]++
	}
	return counts
}
