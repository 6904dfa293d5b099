package command

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/suborbital/extkit/native"
)

func cmdContext() context.Context {
	return context.Background()
}

// InspectCmd prints the function table of every loaded extension
func InspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "print the function table",
		Long:  "load the built-in extensions (and an optional manifest) and print every registered method and function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, done, err := setupRuntime(cmd.Flags())
			if err != nil {
				return err
			}

			defer done()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "ENTRY\tFLAGS\tRETURNS\tARGS")

			for _, entry := range rt.Table().Entries() {
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", entry.Key(), entry.Flags, entry.Returns, describeArgs(entry.Args))
			}

			return w.Flush()
		},
	}

	cmd.Flags().String(manifestFlag, "", "path to a YAML or TOML interface manifest to load")

	return cmd
}

func describeArgs(args native.Arguments) string {
	parts := make([]string, len(args))

	for i, a := range args {
		p := a.Type.String() + " "
		if a.ByReference {
			p += "&"
		}

		p += "$" + a.Name

		if !a.Required {
			p = "[" + p + "]"
		}

		parts[i] = p
	}

	return strings.Join(parts, ", ")
}
