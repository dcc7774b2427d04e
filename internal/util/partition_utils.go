package util

import (
	"fmt"
	"strings"

	"github.com/csimplestring/colvalue-go/types"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/repeale/fp-go"
	"github.com/samber/mo"
)

// SplitPartitionAndDataPredicates separates the conjuncts of condition that
// only reference partition columns from the rest, and re-joins each side with And.
func SplitPartitionAndDataPredicates(condition types.Expression,
	partitionColumns []string) (mo.Option[types.Expression], mo.Option[types.Expression]) {

	var partitionPredicates []types.Expression
	var dataPredicates []types.Expression
	for _, p := range SplitConjunctivePredicates(condition) {
		if IsPredicatePartitionOnly(p, partitionColumns) {
			partitionPredicates = append(partitionPredicates, p)
		} else {
			dataPredicates = append(dataPredicates, p)
		}
	}

	return conjunction(partitionPredicates), conjunction(dataPredicates)
}

func conjunction(predicates []types.Expression) mo.Option[types.Expression] {
	if len(predicates) == 0 {
		return mo.None[types.Expression]()
	}
	reducer := func(acc types.Expression, curr types.Expression) types.Expression {
		if acc == nil {
			// return the first expression
			return curr
		}
		return types.NewAnd(acc, curr)
	}
	return mo.Some(fp.Reduce(reducer, nil)(predicates))
}

func SplitConjunctivePredicates(condition types.Expression) []types.Expression {
	switch v := condition.(type) {
	case *types.And:
		return append(SplitConjunctivePredicates(v.Left), SplitConjunctivePredicates(v.Right)...)
	default:
		return []types.Expression{condition}
	}
}

func IsPredicatePartitionOnly(condition types.Expression, partitionColumns []string) bool {
	lower := func(v string) string { return strings.ToLower(v) }
	lowercasePartCols := mapset.NewSet(fp.Map(lower)(partitionColumns)...)

	columns := types.References(condition).ToSlice()

	return lowercasePartCols.Contains(fp.Map(lower)(columns)...)
}

// escapedPathChars are the characters Hive percent-encodes in partition directory names.
var escapedPathChars = mapset.NewSet[rune]('"', '#', '%', '\'', '*', '/', ':', '=', '?', '\\', '\u007F', '{', '[', ']', '^')

func needsEscape(r rune) bool {
	return (r >= '\u0001' && r <= '\u001F') || escapedPathChars.Contains(r)
}

// EscapePathName percent-encodes the characters Hive does not allow in a
// partition path component.
func EscapePathName(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if needsEscape(r) {
			sb.WriteString(fmt.Sprintf("%%%02X", r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// UnescapePathName reverses EscapePathName. A '%' not followed by two hex
// digits is kept literally.
func UnescapePathName(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, okHi := fromHex(s[i+1])
			lo, okLo := fromHex(s[i+2])
			if okHi && okLo {
				sb.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func fromHex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
