package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jton"
	"go.jacobcolvin.com/jton/config"
	"go.jacobcolvin.com/jton/internal/jsontext"
)

func newDecompressCmd(cfg *config.Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decompress [flags] [file]",
		Short: "Decompress a JTON document back to plain JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDecompress(cfg, args, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file path (- for stdout)")

	return cmd
}

func runDecompress(cfg *config.Config, args []string, output string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	v, err := jton.DecompressJSON(string(data), cfg.Options())
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}

	return writeOutput(output, jsontext.MarshalString(v))
}
