package util

// CloneSlice clones src into a fresh slice with room for extraCap more elements.
// The clone never shares a backing array with src, so appending to the clone
// cannot disturb other slices derived from src.
func CloneSlice[T any](src []T, extraCap int) []T {
	clone := make([]T, len(src), len(src)+extraCap)
	copy(clone, src)

	return clone
}

// ReverseSlice returns a fresh slice holding the elements of src in reverse
// order. src is left unchanged.
func ReverseSlice[T any](src []T) []T {
	reversed := make([]T, len(src))
	for i, v := range src {
		reversed[len(src)-1-i] = v
	}
	return reversed
}
