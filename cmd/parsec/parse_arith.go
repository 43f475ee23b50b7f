package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tetrelok/parsec/examples/arithmetic"
)

func cmdParseArith() *cobra.Command {
	var filePath string
	var cmd = &cobra.Command{
		Use:          "arith",
		Short:        "evaluate a flat, left-associative arithmetic expression",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(filePath)
			if err != nil {
				return err
			}
			input = strings.TrimRight(input, "\n")

			slog.Debug("evaluating expression", "input", input)

			result, err := arithmetic.Evaluate(input)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "read input from file instead of stdin")
	return cmd
}
