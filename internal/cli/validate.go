package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long:  `Loads the configuration file and checks for errors, missing required fields, and invalid values.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfgFile == "" {
				return errors.New("no configuration file given, use --config")
			}
			if _, err := a.loadConfig(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %q is valid.\n", a.cfgFile)
			return nil
		},
	}
}
