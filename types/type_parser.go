package types

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/rotisserie/eris"
)

var simpleTypes []DataType = []DataType{
	Boolean, Tinyint, Smallint, Integer, Bigint, Real, Double, Date, Timestamp, Varbinary, Unknown,
}

var simpleNameToType map[string]DataType = make(map[string]DataType)

var typeAliases map[string]string = map[string]string{
	"int":    "integer",
	"float":  "real",
	"byte":   "tinyint",
	"short":  "smallint",
	"long":   "bigint",
	"binary": "varbinary",
}

var fixedDecimalPattern *regexp.Regexp = regexp.MustCompile(`^decimal\(\s*(\d+)\s*,\s*(\d+)\s*\)$`)

var defaultDecimal *DecimalType = &DecimalType{Precision: 10, Scale: 0}

func init() {
	for _, t := range simpleTypes {
		simpleNameToType[t.Name()] = t
	}
	for alias, name := range typeAliases {
		simpleNameToType[alias] = simpleNameToType[name]
	}
}

// Parse converts a type signature such as "decimal(10,2)", "varchar(3)",
// "map(varchar,array(bigint))" or "row(a bigint, b date)" to a DataType.
func Parse(signature string) (DataType, error) {
	s := strings.TrimSpace(signature)
	if len(s) == 0 {
		return nil, errno.InvalidTypeSignature(signature)
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		return nameToType(strings.ToLower(s))
	}
	if !strings.HasSuffix(s, ")") {
		return nil, errno.InvalidTypeSignature(signature)
	}

	base := strings.ToLower(strings.TrimSpace(s[:open]))
	inner := s[open+1 : len(s)-1]
	args, err := splitTopLevel(inner)
	if err != nil {
		return nil, eris.Wrap(err, signature)
	}

	switch base {
	case "decimal":
		if m := fixedDecimalPattern.FindStringSubmatch(strings.ToLower(s)); m != nil {
			p, _ := strconv.Atoi(m[1])
			sc, _ := strconv.Atoi(m[2])
			dt, err := NewDecimalType(p, sc)
			if err != nil {
				return nil, eris.Wrap(errno.InvalidTypeSignature(signature), err.Error())
			}
			return dt, nil
		}
		return nil, errno.InvalidTypeSignature(signature)
	case "varchar", "char":
		if len(args) != 1 {
			return nil, errno.InvalidTypeSignature(signature)
		}
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || n < 0 {
			return nil, errno.InvalidTypeSignature(signature)
		}
		if base == "char" {
			return Char(n), nil
		}
		return Varchar(n), nil
	case "array":
		if len(args) != 1 {
			return nil, errno.InvalidTypeSignature(signature)
		}
		elementType, err := Parse(args[0])
		if err != nil {
			return nil, err
		}
		return NewArrayType(elementType), nil
	case "map":
		if len(args) != 2 {
			return nil, errno.InvalidTypeSignature(signature)
		}
		keyType, err := Parse(args[0])
		if err != nil {
			return nil, err
		}
		valueType, err := Parse(args[1])
		if err != nil {
			return nil, err
		}
		return NewMapType(keyType, valueType), nil
	case "row":
		fields := make([]*RowField, len(args))
		for i, arg := range args {
			f, err := parseRowField(arg)
			if err != nil {
				return nil, eris.Wrap(err, signature)
			}
			fields[i] = f
		}
		return NewRowType(fields), nil
	default:
		return nil, errno.InvalidTypeSignature(signature)
	}
}

// MustParse is like Parse but panics on an invalid signature.
func MustParse(signature string) DataType {
	dt, err := Parse(signature)
	if err != nil {
		panic(err)
	}
	return dt
}

// ParseSchema parses a comma separated list of "name type" pairs into a RowType.
func ParseSchema(s string) (*RowType, error) {
	parts, err := splitTopLevel(s)
	if err != nil {
		return nil, err
	}
	fields := make([]*RowField, len(parts))
	for i, p := range parts {
		f, err := parseRowField(p)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	schema := NewRowType(fields)
	if err := CheckColumnNameDuplication(schema, "schema"); err != nil {
		return nil, err
	}
	return schema, nil
}

func nameToType(s string) (DataType, error) {
	switch s {
	case "decimal":
		return &DecimalType{Precision: defaultDecimal.Precision, Scale: defaultDecimal.Scale}, nil
	case "varchar", "string":
		return UnboundedVarchar(), nil
	case "char":
		return Char(1), nil
	}
	if res, ok := simpleNameToType[s]; ok {
		return res, nil
	}
	return nil, errno.InvalidTypeSignature(s)
}

func parseRowField(s string) (*RowField, error) {
	s = strings.TrimSpace(s)
	sep := strings.IndexAny(s, " \t")
	if sep <= 0 {
		return nil, errno.InvalidTypeSignature(s)
	}
	dt, err := Parse(s[sep+1:])
	if err != nil {
		return nil, err
	}
	return NewRowField(s[:sep], dt), nil
}

// splitTopLevel splits s on commas that are not nested inside parentheses.
func splitTopLevel(s string) ([]string, error) {
	var parts []string
	depth := 0
	start := 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errno.InvalidTypeSignature(s)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errno.InvalidTypeSignature(s)
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	for _, p := range parts {
		if len(p) == 0 {
			return nil, errno.InvalidTypeSignature(s)
		}
	}
	return parts, nil
}
