package command

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/suborbital/extkit/host"
)

// CallCmd calls a method on a fresh instance of a class, or a static method
func CallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <class> <method> [args...]",
		Short: "call a method",
		Long:  "create an instance of class and call method on it with the given arguments, printing the result",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, done, err := setupRuntime(cmd.Flags())
			if err != nil {
				return err
			}

			defer done()

			class, method := args[0], args[1]

			ctx := cmdContext()
			if caller, _ := cmd.Flags().GetString(callerFlag); caller != "" {
				ctx = host.WithCallerClass(ctx, caller)
			}

			entry, ok := rt.Table().Lookup(class, method)
			if !ok {
				return errors.Wrapf(host.ErrUnknownMethod, "%s::%s", class, method)
			}

			if entry.Static() {
				res, err := rt.CallStatic(ctx, class, method, parseValues(args[2:])...)
				if err != nil {
					return errors.Wrap(err, "failed to CallStatic")
				}

				fmt.Fprintln(cmd.OutOrStdout(), res.String())

				return nil
			}

			h, err := rt.New(class)
			if err != nil {
				return errors.Wrap(err, "failed to New")
			}

			defer release(rt, h)

			res, err := rt.Call(ctx, h, method, parseValues(args[2:])...)
			if err != nil {
				return errors.Wrap(err, "failed to Call")
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.String())

			return nil
		},
	}

	cmd.Flags().String(manifestFlag, "", "path to a YAML or TOML interface manifest to load")
	cmd.Flags().String(callerFlag, "", "class scope to call from, which grants access to its private and protected methods")

	return cmd
}

// release destroys the object behind h, logging rather than returning a failure
func release(rt *host.Runtime, h host.Handle) {
	if err := rt.Destroy(h); err != nil {
		rt.Logger().Error(errors.Wrap(err, "failed to Destroy"))
	}
}

// FnCmd calls a free function
func FnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fn <function> [args...]",
		Short: "call a function",
		Long:  "call a free function with the given arguments, printing the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, done, err := setupRuntime(nil)
			if err != nil {
				return err
			}

			defer done()

			res, err := rt.CallFunction(cmdContext(), args[0], parseValues(args[1:])...)
			if err != nil {
				return errors.Wrap(err, "failed to CallFunction")
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.String())

			return nil
		},
	}

	return cmd
}
