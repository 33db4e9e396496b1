// Package cmd defines the csvutil command tree.
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vegasq/csvutil/internal/output"
	"github.com/vegasq/csvutil/internal/reader"
)

var rootCmd = &cobra.Command{
	Use:   "csvutil",
	Short: "Perform operations on delimited text files",
	Long: `csvutil performs operations on a delimited text file or standard input:
pick a set of fields from each row, merge similar sequential rows, or sort
rows on typed field keys. Files ending in .parquet are read as parquet.`,
	Version: "1.0.0",

	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree. Errors are returned for main to report.
func Execute() error {
	return rootCmd.Execute()
}

// addIOFlags registers the flags shared by every operation.
func addIOFlags(c *cobra.Command, delimiter, format *string) {
	c.Flags().StringVarP(delimiter, "delimiter", "d", ",", `field delimiter for input and output`)
	c.Flags().StringVar(format, "format", "delimited", "output format: delimited, table, jsonl")
}

// inputPath returns the optional filename argument; empty means stdin.
func inputPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// openPipeline validates the delimiter and format flags, then opens the row
// source and the formatter for one invocation. Flag validation happens
// before the source is touched, so a bad flag never produces output.
func openPipeline(path, delimiter, format string, w io.Writer) (reader.Source, output.Formatter, error) {
	delim, err := reader.Delimiter(delimiter)
	if err != nil {
		return nil, nil, err
	}

	out, err := output.New(format, w, delimiter)
	if err != nil {
		return nil, nil, err
	}

	src, err := reader.Open(path, delim)
	if err != nil {
		return nil, nil, err
	}
	return src, out, nil
}
