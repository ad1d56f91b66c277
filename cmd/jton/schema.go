package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jton"
	"go.jacobcolvin.com/jton/config"
	"go.jacobcolvin.com/jton/internal/jsontext"
	"go.jacobcolvin.com/jton/internal/schema"
)

func newSchemaCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [file]",
		Short: "Describe the packer choices compression would make for a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSchema(cfg, args)
		},
	}

	return cmd
}

func runSchema(cfg *config.Config, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	v, err := jsontext.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %s", jton.ErrInvalidJSON, err)
	}

	s, err := schema.Describe(v, cfg.Options())
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}

	fmt.Println(string(out))

	return nil
}
