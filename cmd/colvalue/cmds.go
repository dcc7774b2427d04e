package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/barweiss/go-tuple"
	"github.com/csimplestring/colvalue-go"
	"github.com/csimplestring/colvalue-go/block"
	"github.com/csimplestring/colvalue-go/errno"
	"github.com/csimplestring/colvalue-go/iter"
	"github.com/csimplestring/colvalue-go/types"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Represents the state used when processing a command.
type Action struct {
	cmd *cobra.Command
	loc *time.Location
}

func newAction(cmd *cobra.Command) (*Action, error) {
	a := &Action{cmd: cmd}
	loc, err := time.LoadLocation(a.getString("tz"))
	if err != nil {
		return nil, eris.Wrap(err, "load time zone")
	}
	a.loc = loc
	return a, nil
}

func (a *Action) getBool(name string) bool {
	result, _ := a.cmd.Flags().GetBool(name)
	return result
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

func (a *Action) Printf(format string, args ...any) {
	fmt.Fprintf(a.cmd.OutOrStdout(), format, args...)
}

func (a *Action) format(v *types.Literal) (string, error) {
	if v.IsNull() {
		return "NULL", nil
	}
	return colvalue.Encode(v, a.loc)
}

func decodeLiteral(cmd *cobra.Command, args []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	dt, err := types.Parse(args[0])
	if err != nil {
		return err
	}

	decode := colvalue.Decode
	if a.getBool("hive-text") {
		decode = colvalue.DecodeHiveText
	}
	v, err := decode(args[1], dt, a.getString("name"), a.loc)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"type": dt.String(), "native": v.Value}).Debug("decoded literal")

	s, err := a.format(v)
	if err != nil {
		return err
	}
	a.Printf("%s\t%s\n", dt, s)
	return nil
}

func decodePartition(cmd *cobra.Command, args []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	schema, err := types.ParseSchema(a.getString("schema"))
	if err != nil {
		return err
	}
	decoder, err := colvalue.NewPartitionDecoder(schema, map[string]string{
		colvalue.ConfigStorageTimeZone.Key: a.loc.String(),
	}, nil)
	if err != nil {
		return err
	}

	record, err := decoder.DecodeName(args[0])
	if err != nil {
		return err
	}
	for _, f := range schema.Fields {
		v, err := record.Literal(f.Name)
		if err != nil {
			return err
		}
		s, err := a.format(v)
		if err != nil {
			return err
		}
		a.Printf("%s\t%s\t%s\n", f.Name, f.DataType, s)
	}
	return nil
}

func zipMaps(cmd *cobra.Command, args []string) error {
	a, err := newAction(cmd)
	if err != nil {
		return err
	}
	dt, err := types.Parse(a.getString("type"))
	if err != nil {
		return err
	}
	mapType, ok := dt.(*types.MapType)
	if !ok {
		return errno.IllegalArgumentError(dt.String() + " is not a map type")
	}

	left, err := parseMapLiteral(args[0], mapType, a.loc)
	if err != nil {
		return err
	}
	right, err := parseMapLiteral(args[1], mapType, a.loc)
	if err != nil {
		return err
	}

	v1 := types.NewColumn(colvalue.LambdaLeft, mapType.ValueType)
	v2 := types.NewColumn(colvalue.LambdaRight, mapType.ValueType)
	var merge types.Expression
	switch a.getString("wins") {
	case "left":
		merge = types.NewCoalesce(v1, v2)
	case "right":
		merge = types.NewCoalesce(v2, v1)
	default:
		return errno.IllegalArgumentError("--wins must be 'left' or 'right'")
	}
	logrus.WithField("merge", merge.String()).Debug("zipping maps")

	fn := colvalue.ExpressionFunction(merge, mapType.KeyType, mapType.ValueType, mapType.ValueType)
	res, err := colvalue.MapZipWith(left, right, mapType.ValueType, fn)
	if err != nil {
		return err
	}

	entries, err := iter.Map(res.Entries(), func(e tuple.T2[any, any]) (string, error) {
		k, err := colvalue.Encode(&types.Literal{Value: e.V1, Type: mapType.KeyType}, a.loc)
		if err != nil {
			return "", err
		}
		v, err := a.format(&types.Literal{Value: e.V2, Type: mapType.ValueType})
		if err != nil {
			return "", err
		}
		return k + "=" + v, nil
	})
	if err != nil {
		return err
	}
	a.Printf("%s\n", strings.Join(entries, ","))
	return nil
}

// parseMapLiteral reads "k1=v1,k2=v2", decoding keys and values as partition
// literals of the map's key and value types.
func parseMapLiteral(s string, mapType *types.MapType, loc *time.Location) (*block.MapBlock, error) {
	var keys, values []any
	if s != "" {
		for _, entry := range strings.Split(s, ",") {
			k, v, ok := strings.Cut(entry, "=")
			if !ok {
				return nil, errno.IllegalArgumentError("map entry " + entry + " is not of the form key=value")
			}
			key, err := colvalue.Decode(k, mapType.KeyType, "map key", loc)
			if err != nil {
				return nil, err
			}
			value, err := colvalue.Decode(v, mapType.ValueType, "map value", loc)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key.Value)
			values = append(values, value.Value)
		}
	}
	return block.MapBlockOf(mapType, keys, values)
}
