package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}

	var cmdRoot = &cobra.Command{
		Use:   "parsec",
		Short: "parsec command runner",
		Long:  `parsec drives the bundled example grammars from the command line.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")
			debug, _ := cmd.Flags().GetBool("debug")

			level := slog.LevelInfo
			switch {
			case debug:
				level = slog.LevelDebug
			case verbose:
				level = slog.LevelInfo
			case quiet:
				level = slog.LevelWarn
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     level,
				AddSource: debug,
			})
			slog.SetDefault(slog.New(handler))

			return nil
		},
	}
	cmdRoot.AddCommand(cmdParse())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdParse() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "parse",
		Short: "parse input using one of the bundled grammars",
	}
	cmd.AddCommand(cmdParseCSV())
	cmd.AddCommand(cmdParseArith())
	return cmd
}

func readInput(filePath string) (string, error) {
	if filePath == "" || filePath == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filePath, err)
	}
	return string(data), nil
}
