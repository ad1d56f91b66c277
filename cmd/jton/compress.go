package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jton"
	"go.jacobcolvin.com/jton/config"
	"go.jacobcolvin.com/jton/internal/jsontext"
)

func newCompressCmd(cfg *config.Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compress [flags] [file]",
		Short: "Compress JSON into its JTON form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCompress(cfg, args, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file path (- for stdout)")

	return cmd
}

func runCompress(cfg *config.Config, args []string, output string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	v, err := jsontext.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %s", jton.ErrInvalidJSON, err)
	}

	before := len(jsontext.Marshal(v))

	out, err := jton.CompressJSON(v, cfg.Options())
	if err != nil {
		return err
	}

	slog.Info("compressed", "before_bytes", before, "after_bytes", len(out))

	return writeOutput(output, out)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(args[0])
}

func writeOutput(path, text string) error {
	if path == "" || path == "-" {
		_, err := fmt.Println(text)

		return err
	}

	return os.WriteFile(path, []byte(text+"\n"), 0o600)
}
