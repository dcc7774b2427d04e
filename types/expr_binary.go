package types

import (
	"fmt"

	"github.com/csimplestring/colvalue-go/errno"
	mapset "github.com/deckarep/golang-set/v2"
)

type binaryExp struct {
	Left         Expression
	Right        Expression
	Symbol       string
	nullSafeEval func(l any, r any) (any, error)
}

func (b *binaryExp) Eval(record RowRecord) (any, error) {
	leftRes, err := b.Left.Eval(record)
	if err != nil || leftRes == nil {
		return nil, err
	}

	rightRes, err := b.Right.Eval(record)
	if err != nil || rightRes == nil {
		return nil, err
	}

	return b.nullSafeEval(leftRes, rightRes)
}

func (b *binaryExp) Children() []Expression {
	return []Expression{b.Left, b.Right}
}

func (b *binaryExp) DataType() DataType {
	return Boolean
}

func (b *binaryExp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Symbol, b.Right.String())
}

func (b *binaryExp) References() []string {
	res := mapset.NewSet[string]()
	for _, ch := range b.Children() {
		for _, c := range ch.References() {
			res.Add(c)
		}
	}
	return res.ToSlice()
}

func compareWithType(dataType DataType, l any, r any) (int, error) {
	ops, err := OperatorsFor(dataType)
	if err != nil {
		return 0, err
	}
	if ops.Compare == nil {
		return 0, errno.UnsupportedOperation(dataType.String(), "comparison")
	}
	return ops.Compare(l, r), nil
}

func equalWithType(dataType DataType, l any, r any) (bool, error) {
	ops, err := OperatorsFor(dataType)
	if err != nil {
		return false, err
	}
	return ops.Equal(l, r), nil
}

type And struct {
	*binaryExp
}

func NewAnd(l Expression, r Expression) *And {
	b := &binaryExp{
		Left:   l,
		Right:  r,
		Symbol: "&&",
		nullSafeEval: func(lRes any, rRes any) (any, error) {
			return lRes.(bool) && rRes.(bool), nil
		},
	}

	return &And{
		binaryExp: b,
	}
}

type Or struct {
	*binaryExp
}

func NewOr(l Expression, r Expression) *Or {
	b := &binaryExp{
		Left:   l,
		Right:  r,
		Symbol: "||",
		nullSafeEval: func(lRes any, rRes any) (any, error) {
			return lRes.(bool) || rRes.(bool), nil
		},
	}

	return &Or{
		binaryExp: b,
	}
}

type EqualTo struct {
	*binaryExp
}

func NewEqualTo(l Expression, r Expression) *EqualTo {
	b := &binaryExp{
		Left:   l,
		Right:  r,
		Symbol: "=",
		nullSafeEval: func(lRes any, rRes any) (any, error) {
			return equalWithType(l.DataType(), lRes, rRes)
		},
	}

	return &EqualTo{
		binaryExp: b,
	}
}

type Gt struct {
	*binaryExp
}

func NewGreaterThan(l Expression, r Expression) *Gt {
	b := &binaryExp{
		Left:   l,
		Right:  r,
		Symbol: ">",
		nullSafeEval: func(lRes any, rRes any) (any, error) {
			res, err := compareWithType(l.DataType(), lRes, rRes)
			return res > 0, err
		},
	}

	return &Gt{
		binaryExp: b,
	}
}

type Gte struct {
	*binaryExp
}

func NewGreaterThanOrEq(l Expression, r Expression) *Gte {
	b := &binaryExp{
		Left:   l,
		Right:  r,
		Symbol: ">=",
		nullSafeEval: func(lRes any, rRes any) (any, error) {
			res, err := compareWithType(l.DataType(), lRes, rRes)
			return res >= 0, err
		},
	}

	return &Gte{
		binaryExp: b,
	}
}

type Lt struct {
	*binaryExp
}

func NewLessThan(l Expression, r Expression) *Lt {
	b := &binaryExp{
		Left:   l,
		Right:  r,
		Symbol: "<",
		nullSafeEval: func(lRes any, rRes any) (any, error) {
			res, err := compareWithType(l.DataType(), lRes, rRes)
			return res < 0, err
		},
	}

	return &Lt{
		binaryExp: b,
	}
}

type Lte struct {
	*binaryExp
}

func NewLessThanOrEq(l Expression, r Expression) *Lte {
	b := &binaryExp{
		Left:   l,
		Right:  r,
		Symbol: "<=",
		nullSafeEval: func(lRes any, rRes any) (any, error) {
			res, err := compareWithType(l.DataType(), lRes, rRes)
			return res <= 0, err
		},
	}

	return &Lte{
		binaryExp: b,
	}
}
