package cmd

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/vegasq/csvutil/internal/sorter"
)

var (
	sortDelimiter string
	sortFormat    string
	sortKeys      []string

	sortCmd = &cobra.Command{
		Use:   "sort [filename]",
		Short: "Sort rows based on the specified fields",
		Long: `Sort rows on zero-indexed fields. An optional type qualifier (int,
float, string) controls how values compare, e.g. "-f 3:float" sorts on the
fourth field interpreting elements as floating point values; "-f 3" sorts on
it as strings.

Keys are applied one stable sort at a time in the order given, so the last
-f key is the primary ordering and earlier keys break ties.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSort,
	}
)

func init() {
	sortCmd.Flags().StringArrayVarP(&sortKeys, "fields", "f", nil,
		"zero-indexed field to sort on, with optional :type; may be repeated")
	sortCmd.MarkFlagRequired("fields")
	addIOFlags(sortCmd, &sortDelimiter, &sortFormat)
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	keys, err := sorter.ParseKeys(sortKeys)
	if err != nil {
		return err
	}

	src, out, err := openPipeline(inputPath(args), sortDelimiter, sortFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer src.Close()

	// Sorting cannot stream; buffer the whole input.
	var rows [][]string
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	if err := sorter.Sort(rows, keys); err != nil {
		return err
	}

	for _, row := range rows {
		if err := out.WriteRow(row); err != nil {
			return err
		}
	}
	return out.Flush()
}
