package cmd

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/vegasq/csvutil/internal/pick"
)

var (
	pickDelimiter string
	pickFormat    string
	pickFields    string

	pickCmd = &cobra.Command{
		Use:   "pick [filename]",
		Short: "Pick a field or set of fields from each row",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPick,
	}
)

func init() {
	pickCmd.Flags().StringVarP(&pickFields, "fields", "f", "",
		"comma-separated list of (zero-indexed) fields")
	pickCmd.MarkFlagRequired("fields")
	addIOFlags(pickCmd, &pickDelimiter, &pickFormat)
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	fields, err := pick.ParseFields(pickFields)
	if err != nil {
		return err
	}

	src, out, err := openPipeline(inputPath(args), pickDelimiter, pickFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer src.Close()

	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		picked, err := pick.Project(row, fields)
		if err != nil {
			return err
		}
		if err := out.WriteRow(picked); err != nil {
			return err
		}
	}
	return out.Flush()
}
