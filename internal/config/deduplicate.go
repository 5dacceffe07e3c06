package config

// deduplicate removes repeated elements while keeping the order of first occurrences.
func deduplicate[T comparable](list []T) []T {
	seen := make(map[T]bool, len(list))
	result := make([]T, 0, len(list))
	for _, x := range list {
		if seen[x] {
			continue
		}
		seen[x] = true
		result = append(result, x)
	}
	return result
}
