package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jton/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build and version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Printf("jton %s (%s, %s/%s)\n", versionString(), version.Revision, version.GoOS, version.GoArch)

			return nil
		},
	}
}

func versionString() string {
	if version.Version == "" {
		return "dev"
	}

	return version.Version
}
