package colvalue

import (
	"strings"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/internal/util"
)

// ParsePartitionName splits a Hive partition path such as "ds=2024-01-01/hr=3"
// into its keys and unescaped values, in path order.
func ParsePartitionName(name string) ([]string, []string, error) {
	if name == "" {
		return nil, nil, errno.InvalidPartitionName(name)
	}

	components := strings.Split(strings.Trim(name, "/"), "/")
	keys := make([]string, 0, len(components))
	values := make([]string, 0, len(components))
	for _, c := range components {
		k, v, found := strings.Cut(c, "=")
		if !found || k == "" {
			return nil, nil, errno.InvalidPartitionName(name)
		}
		keys = append(keys, util.UnescapePathName(k))
		values = append(values, util.UnescapePathName(v))
	}
	return keys, values, nil
}

// MakePartitionName is the inverse of ParsePartitionName.
func MakePartitionName(keys []string, values []string) (string, error) {
	if len(keys) == 0 || len(keys) != len(values) {
		return "", errno.IllegalArgumentError("partition keys and values must be non-empty and of the same length")
	}

	parts := make([]string, len(keys))
	for i := range keys {
		parts[i] = util.EscapePathName(keys[i]) + "=" + util.EscapePathName(values[i])
	}
	return strings.Join(parts, "/"), nil
}
