// Command jton compresses and decompresses JSON using the JTON codec, and
// can describe or watch the packer choices it makes along the way.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/jton/config"
	"go.jacobcolvin.com/jton/log"
	"go.jacobcolvin.com/jton/profile"
)

func main() {
	os.Exit(run())
}

func run() int {
	logCfg := log.NewConfig()
	codecCfg := config.NewConfig()
	profileCfg := profile.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "jton",
		Short:         "Compress and decompress JSON with the JTON codec",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"path to a YAML file overlaying codec configuration")

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	codecCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register log completions: %v\n", err)
	}

	if err := codecCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register codec completions: %v\n", err)
	}

	if err := profileCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register profile completions: %v\n", err)
	}

	// The profiler copies profileCfg, so it is built after flag parsing.
	var profiler *profile.Profiler

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if configFile != "" {
			// Flags given on the command line take precedence over the file.
			changed := map[string]string{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })

			if err := codecCfg.LoadFile(configFile); err != nil {
				return err
			}

			for name, val := range changed {
				if err := cmd.Flags().Set(name, val); err != nil {
					return fmt.Errorf("reapplying --%s: %w", name, err)
				}
			}
		}

		handler, err := logCfg.NewHandler(os.Stderr)
		if err != nil {
			return fmt.Errorf("building log handler: %w", err)
		}

		slog.SetDefault(slog.New(handler))

		profiler = profileCfg.NewProfiler()

		return profiler.Start()
	}

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return profiler.Stop()
	}

	rootCmd.AddCommand(
		newCompressCmd(codecCfg),
		newDecompressCmd(codecCfg),
		newSchemaCmd(codecCfg),
		newBenchCmd(codecCfg),
		newWatchCmd(codecCfg),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)

		return 1
	}

	return 0
}

// configFile is the optional --config flag target, declared at package
// scope so the PersistentPreRunE closure above can read it after parsing.
var configFile string
