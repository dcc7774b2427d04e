package util

import "github.com/mitchellh/hashstructure/v2"

// Hash returns a structural hash of v; maps hash independently of iteration order.
func Hash(v any) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}
