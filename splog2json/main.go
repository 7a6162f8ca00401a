package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	strict bool
	quiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "splog2json [file ...]",
	Short: "Decode splinter trace lines into JSON objects",
	Long: `splog2json reads splinter trace lines from the given files, or from
stdin when no files are named, and writes one JSON object per line to
stdout. Lines that are not splinter lines are skipped, so the tool can be
pointed at mixed host log output.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return convert(os.Stdin, "stdin", cmd.OutOrStdout())
		}
		for _, path := range args {
			if err := convertFile(path, cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&strict, "strict", false,
		"fail on malformed splinter lines instead of warning")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress warnings about malformed lines")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "splog2json: %v\n", err)
		os.Exit(1)
	}
}

func convertFile(path string, out io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return convert(file, path, out)
}

// convert decodes splinter lines from r and writes JSON lines to out.
// Non-splinter lines pass silently; malformed splinter lines warn, or fail
// the run under --strict.
func convert(r io.Reader, name string, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 10*1024*1024)
	enc := json.NewEncoder(out)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, err := Decode(scanner.Text())
		if errors.Is(err, errNotSplinter) {
			continue
		}
		if err != nil {
			if strict {
				return fmt.Errorf("%s:%d: %w", name, lineNo, err)
			}
			if !quiet {
				fmt.Fprintf(os.Stderr, "splog2json: %s:%d: %v\n", name, lineNo, err)
			}
			continue
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("%s:%d: encode: %w", name, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: read: %w", name, err)
	}
	return nil
}
