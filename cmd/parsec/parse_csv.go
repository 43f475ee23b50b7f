package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tetrelok/parsec/examples/csv"
)

func cmdParseCSV() *cobra.Command {
	var filePath string
	var cmd = &cobra.Command{
		Use:          "csv",
		Short:        "parse a newline-terminated, comma-separated list of integer rows",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(filePath)
			if err != nil {
				return err
			}

			slog.Debug("parsing csv input", "bytes", len(input))

			rows, err := csv.ParseCSV(input)
			if err != nil {
				return err
			}
			for _, row := range rows {
				fmt.Println(row)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "read input from file instead of stdin")
	return cmd
}
