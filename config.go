package colvalue

import (
	"strconv"
	"strings"
	"time"

	"github.com/barweiss/go-tuple"
	"github.com/csimplestring/colvalue-go/errno"
	"github.com/rotisserie/eris"
	duration "github.com/xhit/go-str2duration/v2"
)

// ConfigEntry is one typed setting read from a string configuration map.
type ConfigEntry[T any] struct {
	Key          string
	DefaultValue string
	FromString   func(s string) (T, error)
}

func (c *ConfigEntry[T]) fromConfiguration(conf map[string]string) (T, error) {
	s, ok := conf[c.Key]
	if !ok {
		s = c.DefaultValue
	}
	v, err := c.FromString(s)
	if err != nil {
		var zero T
		return zero, eris.Wrapf(err, "invalid value %q for %s", s, c.Key)
	}
	return v, nil
}

var timeDurationUnits = map[string]string{
	"nanosecond":  "ns",
	"microsecond": "us",
	"millisecond": "ms",
	"second":      "s",
	"minute":      "m",
	"hour":        "h",
	"day":         "d",
	"week":        "w",
}

// The string value of a duration config has the format: interval <number> <unit>.
// Where <unit> is either week, day, hour, minute, second, millisecond, microsecond
// or nanosecond, optionally in plural.
func parseDuration(s string) (time.Duration, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) != 3 {
		return 0, eris.Wrapf(errno.ErrIllegalArgument, "can't parse duration from string %s", s)
	}
	if fields[0] != "interval" {
		return 0, eris.Wrapf(errno.ErrIllegalArgument, "this is not a valid duration starting with %s", fields[0])
	}
	unit, ok := timeDurationUnits[strings.TrimSuffix(fields[2], "s")]
	if !ok {
		return 0, eris.Wrapf(errno.ErrIllegalArgument, "unknown duration unit %s", fields[2])
	}

	return duration.ParseDuration(fields[1] + unit)
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.ToLower(s))
}

// ConfigStorageTimeZone is the zone TIMESTAMP partition values are written in.
var ConfigStorageTimeZone = &ConfigEntry[*time.Location]{
	Key:          "hive.storage-timezone",
	DefaultValue: "UTC",
	FromString:   time.LoadLocation,
}

var ConfigPartitionCacheEnabled = &ConfigEntry[bool]{
	Key:          "hive.partition-cache",
	DefaultValue: "true",
	FromString:   parseBool,
}

var ConfigPartitionCacheTTL = &ConfigEntry[time.Duration]{
	Key:          "hive.partition-cache-ttl",
	DefaultValue: "interval 1 hour",
	FromString:   parseDuration,
}

type configurations []*tuple.T2[string, string]

var defaultConfigurations = configurations{
	{V1: ConfigStorageTimeZone.Key, V2: ConfigStorageTimeZone.DefaultValue},
	{V1: ConfigPartitionCacheEnabled.Key, V2: ConfigPartitionCacheEnabled.DefaultValue},
	{V1: ConfigPartitionCacheTTL.Key, V2: ConfigPartitionCacheTTL.DefaultValue},
}

// mergeConfigurations fills the keys missing from conf with the given defaults.
func mergeConfigurations(defaults configurations, conf map[string]string) map[string]string {

	res := make(map[string]string, len(conf)+len(defaults))
	for k, v := range conf {
		res[k] = v
	}

	for _, v := range defaults {
		if _, ok := res[v.V1]; !ok {
			res[v.V1] = v.V2
		}
	}
	return res
}
