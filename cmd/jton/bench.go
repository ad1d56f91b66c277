package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jton"
	"go.jacobcolvin.com/jton/config"
	"go.jacobcolvin.com/jton/internal/jsontext"
)

func newBenchCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [file]",
		Short: "Report byte and approximate token savings for a JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runBench(cfg, args)
		},
	}

	return cmd
}

func runBench(cfg *config.Config, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	v, err := jsontext.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %s", jton.ErrInvalidJSON, err)
	}

	canon := jsontext.MarshalString(v)

	out, err := jton.CompressJSON(v, cfg.Options())
	if err != nil {
		return err
	}

	beforeBytes, afterBytes := len(canon), len(out)
	beforeTok, afterTok := approxTokens(canon), approxTokens(out)

	fmt.Printf("bytes:  %d -> %d (%.1f%% of original)\n", beforeBytes, afterBytes, pct(afterBytes, beforeBytes))
	fmt.Printf("tokens: ~%d -> ~%d (%.1f%% of original, approximate)\n", beforeTok, afterTok, pct(afterTok, beforeTok))

	return nil
}

// approxTokens estimates a tokenizer-agnostic token count as one token per
// four bytes. Real tokenizer measurement is explicitly out of scope for
// this codec (the evaluator component owns that); this is a rough proxy
// so `bench` gives a ballpark without depending on a specific tokenizer.
func approxTokens(s string) int {
	n := (len(s) + 3) / 4
	if n == 0 && len(s) > 0 {
		n = 1
	}

	return n
}

func pct(after, before int) float64 {
	if before == 0 {
		return 0
	}

	return float64(after) / float64(before) * 100
}
