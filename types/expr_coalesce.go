package types

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/repeale/fp-go"
)

// Coalesce evaluates to the first non-null child.
type Coalesce struct {
	Operands []Expression
}

func NewCoalesce(operands ...Expression) *Coalesce {
	return &Coalesce{Operands: operands}
}

func (c *Coalesce) Eval(record RowRecord) (any, error) {
	for _, o := range c.Operands {
		v, err := o.Eval(record)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}
	return nil, nil
}

func (c *Coalesce) DataType() DataType {
	if len(c.Operands) == 0 {
		return Unknown
	}
	return c.Operands[0].DataType()
}

func (c *Coalesce) String() string {
	args := fp.Map(func(e Expression) string { return e.String() })(c.Operands)
	return fmt.Sprintf("coalesce(%s)", strings.Join(args, ", "))
}

func (c *Coalesce) Children() []Expression {
	return c.Operands
}

func (c *Coalesce) References() []string {
	res := mapset.NewSet[string]()
	for _, o := range c.Operands {
		res = res.Union(References(o))
	}
	return res.ToSlice()
}
