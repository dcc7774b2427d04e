package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "decode type literal",
		Short: "Decode a partition literal of the given type",
		Args:  cobra.ExactArgs(2),
		RunE:  decodeLiteral}
	cmd.Flags().String("name", "literal", "partition key name used in error messages")
	cmd.Flags().Bool("hive-text", false, "decode as Hive text, where \\N is null")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "partition name",
		Short: "Decode a partition path name, e.g. ds=2024-01-01/hr=3",
		Args:  cobra.ExactArgs(1),
		RunE:  decodePartition}
	cmd.Flags().String("schema", "", "partition schema, e.g. \"ds date, hr integer\"")
	_ = cmd.MarkFlagRequired("schema")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "zip left right",
		Short: "Merge two map literals such as a=1,b=2 over the union of their keys",
		Args:  cobra.ExactArgs(2),
		RunE:  zipMaps}
	cmd.Flags().String("type", "map(varchar,bigint)", "map type of both inputs")
	cmd.Flags().String("wins", "right", "side whose value is kept for shared keys, 'left' or 'right'")
	root.AddCommand(cmd)
}

func newRootCommand() *cobra.Command {
	var root = &cobra.Command{
		Use:          "colvalue",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().String("tz", "UTC", "storage time zone for TIMESTAMP values")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug output")
	addCommands(root)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
