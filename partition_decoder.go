package colvalue

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/internal/util"
	"github.com/csimplestring/colvalue-go/types"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rotisserie/eris"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
)

// PartitionDecoder decodes the partition values of one table against its
// partition schema. Decoded records are memoized per distinct value map when
// the partition cache is enabled. It is safe for concurrent use.
type PartitionDecoder struct {
	schema       *types.RowType
	columns      mapset.Set[string]
	loc          *time.Location
	cacheEnabled bool
	cacheTTL     time.Duration
	clock        Clock

	mu        sync.Mutex
	logger    logrus.FieldLogger
	cache     map[uint64]*cachedPartition
	nextSweep int64
}

type cachedPartition struct {
	values   map[string]string
	record   *PartitionRowRecord
	expireAt int64
}

// NewPartitionDecoder validates the partition schema and reads the decoder
// settings from conf; absent keys take their defaults.
func NewPartitionDecoder(schema *types.RowType, conf map[string]string, clock Clock) (*PartitionDecoder, error) {
	if err := types.CheckColumnNameDuplication(schema, "partition"); err != nil {
		return nil, err
	}
	for _, f := range schema.Fields {
		if err := VerifyPartitionTypeSupported(f.Name, f.DataType); err != nil {
			return nil, err
		}
	}

	merged := mergeConfigurations(defaultConfigurations, conf)
	loc, err := ConfigStorageTimeZone.fromConfiguration(merged)
	if err != nil {
		return nil, err
	}
	cacheEnabled, err := ConfigPartitionCacheEnabled.fromConfiguration(merged)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := ConfigPartitionCacheTTL.fromConfiguration(merged)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = &SystemClock{}
	}

	return &PartitionDecoder{
		schema:       schema,
		columns:      mapset.NewSet(schema.FieldNames()...),
		loc:          loc,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
		clock:        clock,
		logger:       logrus.StandardLogger(),
		cache:        make(map[uint64]*cachedPartition),
	}, nil
}

func (d *PartitionDecoder) Schema() *types.RowType {
	return d.schema
}

func (d *PartitionDecoder) Location() *time.Location {
	return d.loc
}

// SetLogger replaces the logger, logrus.StandardLogger() by default.
func (d *PartitionDecoder) SetLogger(logger logrus.FieldLogger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger = logger
}

func (d *PartitionDecoder) log() logrus.FieldLogger {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.logger
}

// Decode returns the record of one partition given its raw key values. Keys
// that are not partition columns are rejected.
func (d *PartitionDecoder) Decode(partitionValues map[string]string) (*PartitionRowRecord, error) {
	if unknown := util.KeySet(partitionValues).Difference(d.columns); unknown.Cardinality() > 0 {
		return nil, errno.IllegalArgumentError(fmt.Sprintf("unknown partition columns %v", unknown.ToSlice()))
	}
	if !d.cacheEnabled {
		return NewPartitionRowRecord(d.schema, partitionValues, d.loc)
	}

	key, err := util.Hash(partitionValues)
	if err != nil {
		return nil, eris.Wrap(err, "hash partition values")
	}
	now := d.clock.NowInMillis()

	d.mu.Lock()
	cached, ok := d.cache[key]
	logger := d.logger
	d.mu.Unlock()
	if ok && maps.Equal(cached.values, partitionValues) {
		if now < cached.expireAt {
			return cached.record, nil
		}
		logger.WithField("partition", partitionValues).Debug("partition cache entry expired")
	}

	record, err := NewPartitionRowRecord(d.schema, partitionValues, d.loc)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.sweepLocked(now)
	d.cache[key] = &cachedPartition{
		values:   maps.Clone(partitionValues),
		record:   record,
		expireAt: now + d.cacheTTL.Milliseconds(),
	}
	d.mu.Unlock()
	return record, nil
}

// sweepLocked drops the expired entries, at most once per TTL. d.mu must be held.
func (d *PartitionDecoder) sweepLocked(now int64) {
	if now < d.nextSweep {
		return
	}
	maps.DeleteFunc(d.cache, func(_ uint64, c *cachedPartition) bool {
		return now >= c.expireAt
	})
	d.nextSweep = now + d.cacheTTL.Milliseconds()
}

// DecodeName decodes a partition given its path name, e.g. "ds=2024-01-01/hr=3".
func (d *PartitionDecoder) DecodeName(name string) (*PartitionRowRecord, error) {
	keys, values, err := ParsePartitionName(name)
	if err != nil {
		return nil, err
	}
	partitionValues := make(map[string]string, len(keys))
	for i, k := range keys {
		partitionValues[k] = values[i]
	}
	return d.Decode(partitionValues)
}

// Prune decodes the named partitions and keeps those that satisfy the
// partition-only conjuncts of condition. The conjuncts that reference other
// columns are returned for the caller to apply to the data.
func (d *PartitionDecoder) Prune(names []string, condition types.Expression) ([]*PartitionRowRecord, mo.Option[types.Expression], error) {
	partitionPredicate, dataPredicate := util.SplitPartitionAndDataPredicates(condition, d.schema.FieldNames())

	var res []*PartitionRowRecord
	for _, name := range names {
		record, err := d.DecodeName(name)
		if err != nil {
			return nil, mo.None[types.Expression](), err
		}

		if predicate, ok := partitionPredicate.Get(); ok {
			matched, err := predicate.Eval(record)
			if err != nil {
				return nil, mo.None[types.Expression](), err
			}
			if matched != true {
				continue
			}
		}
		res = append(res, record)
	}

	d.log().WithFields(logrus.Fields{
		"partitions": len(names),
		"matched":    len(res),
	}).Debugf("pruned partitions with %s", condition)
	return res, dataPredicate, nil
}

// CacheSize returns the number of memoized partitions. Expired entries stay
// counted until the next sweep, which runs on insert once per TTL.
func (d *PartitionDecoder) CacheSize() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cache)
}
