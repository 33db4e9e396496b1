package cmd

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/vegasq/csvutil/internal/merge"
)

var (
	mergeDelimiter string
	mergeFormat    string
	mergeSpecs     []string

	mergeCmd = &cobra.Command{
		Use:   "merge [filename]",
		Short: "Merge similar sequential lines",
		Long: `Merge groups of consecutive rows that are identical on every field not
named in a field:function pair. Each pair's function is folded over the
values its field took across the group, and the result is appended to the
output row as a new field, in the order the pairs were specified.

Functions are: sum, min, max, mean, median, stdev, first, last, ignore.
E.g., "-f 0:max". Multiple pairs can be specified. Rows with an identical
key that are not adjacent in the input are never merged together.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runMerge,
	}
)

func init() {
	mergeCmd.Flags().StringArrayVarP(&mergeSpecs, "field_function", "f", nil,
		`field:function merge operation for a field that is not expected to be
identical across rows; may be repeated`)
	addIOFlags(mergeCmd, &mergeDelimiter, &mergeFormat)
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	// All specs are validated before the first row is read.
	bindings, err := merge.ParseBindings(mergeSpecs)
	if err != nil {
		return err
	}

	src, out, err := openPipeline(inputPath(args), mergeDelimiter, mergeFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer src.Close()

	m := merge.NewMerger(bindings, out.WriteRow)
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err := m.Add(row); err != nil {
			return err
		}
	}

	if err := m.Flush(); err != nil {
		return err
	}
	return out.Flush()
}
