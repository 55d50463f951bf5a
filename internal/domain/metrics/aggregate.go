package metrics

// Number covers the counts and amounts the aggregators are fed.
type Number interface {
	~int | ~float64
}

func Count[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, record := range records {
		if pred(record) {
			n++
		}
	}
	return n
}

func Sum[T any](records []T, selector func(T) float64) float64 {
	total := 0.0
	for _, record := range records {
		total += selector(record)
	}
	return total
}

// Average is 0 for an empty collection.
func Average[T any](records []T, selector func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	return Sum(records, selector) / float64(len(records))
}

// Rate is numerator as a percentage of denominator, 0 when the denominator is 0.
func Rate[N Number](numerator, denominator N) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}

// Change is the percentage change from previous to current, 0 when there is no previous value.
func Change[N Number](current, previous N) float64 {
	if previous == 0 {
		return 0
	}
	return (float64(current) - float64(previous)) / float64(previous) * 100
}
