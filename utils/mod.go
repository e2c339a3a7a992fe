package utils

import "golang.org/x/exp/constraints"

func Sum[T constraints.Integer](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// SumBy adds up f(item) for every item of the slice.
func SumBy[S any, T constraints.Integer](items []S, f func(S) T) T {
	var total T
	for _, item := range items {
		total += f(item)
	}
	return total
}
