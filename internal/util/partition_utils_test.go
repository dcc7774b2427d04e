package util

import (
	"testing"
	"time"

	"github.com/csimplestring/colvalue-go/types"
	"github.com/stretchr/testify/assert"
)

func TestSplitPartitionAndDataPredicates(t *testing.T) {
	ds := types.NewColumn("ds", types.Date)
	hr := types.NewColumn("HR", types.Integer)
	price := types.NewColumn("price", types.Double)

	p1 := types.NewEqualTo(ds, types.LiteralDate(mustDate("2024-01-01")))
	p2 := types.NewGreaterThan(hr, types.LiteralInteger(3))
	d1 := types.NewLessThan(price, types.LiteralDouble(10))

	condition := types.NewAnd(types.NewAnd(p1, d1), p2)

	partition, data := SplitPartitionAndDataPredicates(condition, []string{"ds", "hr"})
	assert.True(t, partition.IsPresent())
	assert.True(t, data.IsPresent())
	assert.Equal(t, types.NewAnd(p1, p2).String(), partition.MustGet().String())
	assert.Equal(t, d1.String(), data.MustGet().String())

	partition, data = SplitPartitionAndDataPredicates(d1, []string{"ds"})
	assert.True(t, partition.IsAbsent())
	assert.Equal(t, d1, data.MustGet())
}

func TestSplitConjunctivePredicates(t *testing.T) {
	a := types.NewIsNull(types.NewColumn("a", types.Bigint))
	b := types.NewIsNull(types.NewColumn("b", types.Bigint))
	c := types.NewIsNull(types.NewColumn("c", types.Bigint))

	assert.Equal(t, []types.Expression{a, b, c}, SplitConjunctivePredicates(types.NewAnd(a, types.NewAnd(b, c))))
	or := types.NewOr(a, b)
	assert.Equal(t, []types.Expression{or}, SplitConjunctivePredicates(or))
}

func TestEscapePathName(t *testing.T) {
	tests := []struct {
		raw     string
		escaped string
	}{
		{"plain", "plain"},
		{"a/b", "a%2Fb"},
		{"k=v", "k%3Dv"},
		{"100%", "100%25"},
		{"2024-01-01 10:00:00", "2024-01-01 10%3A00%3A00"},
		{"tab\there", "tab%09here"},
		{"日本", "日本"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.escaped, EscapePathName(tt.raw))
			assert.Equal(t, tt.raw, UnescapePathName(tt.escaped))
		})
	}
}

func TestUnescapePathName_Malformed(t *testing.T) {
	assert.Equal(t, "%zz", UnescapePathName("%zz"))
	assert.Equal(t, "50%", UnescapePathName("50%"))
	assert.Equal(t, "a%2", UnescapePathName("a%2"))
	assert.Equal(t, "a/", UnescapePathName("a%2f"))
}

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
