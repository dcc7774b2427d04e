package util

import mapset "github.com/deckarep/golang-set/v2"

func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func KeySet[K comparable, V any](m map[K]V) mapset.Set[K] {
	return mapset.NewSet(Keys(m)...)
}

func MaxInt(x int, y int) int {
	if x > y {
		return x
	}
	return y
}
