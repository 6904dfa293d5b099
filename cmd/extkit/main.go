package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suborbital/extkit/cmd/extkit/command"
)

// Version is the extkit release version
const Version = "0.1.0"

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "extkit",
		Short:   "native extension host",
		Version: Version,
		Long:    `extkit loads native extensions into a scripting host and lets you inspect and call their methods.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.SetVersionTemplate("extkit v{{.Version}}\n")

	cmd.AddCommand(command.InspectCmd())
	cmd.AddCommand(command.CallCmd())
	cmd.AddCommand(command.FnCmd())

	return cmd
}
