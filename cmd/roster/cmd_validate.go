package main

import (
	"fmt"

	"roster/internal/validate"

	"github.com/spf13/cobra"
)

// validateCmd checks a single submission without adding it
var validateCmd = &cobra.Command{
	Use:   "validate NAME AGE",
	Short: "Check whether a name and age would be accepted",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := validate.Validate(args[0], args[1])
		if err != nil {
			if verr, ok := validate.AsError(err); ok {
				return fmt.Errorf("%s: %s", verr.Title, verr.Message)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%d years old)\n", in.Name, in.Age)
		return nil
	},
}

func init() {
	// Everything after NAME is positional, so a negative AGE reaches validation.
	validateCmd.Flags().SetInterspersed(false)
}
