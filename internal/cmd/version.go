package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solarwatch/solaredge-cli/internal/update"
)

// version is set at build time via ldflags
var version = "dev"

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print version information",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "solaredge-cli version %s\n", version)

			// Check for updates (non-blocking, fails silently)
			result := update.CheckForUpdate(cmd.Context(), version)
			if result != nil && result.UpdateAvailable {
				errOut := cmd.ErrOrStderr()
				_, _ = fmt.Fprintf(errOut, "\nUpdate available: %s -> %s\n", result.CurrentVersion, result.LatestVersion) //nolint:errcheck
				_, _ = fmt.Fprintf(errOut, "Download: %s\n", result.UpdateURL)                                            //nolint:errcheck
			}
		},
	}

	cmd.AddCommand(newVersionAPICmd())
	cmd.AddCommand(newVersionSupportedCmd())

	return cmd
}

func newVersionAPICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "Print the monitoring API's current version",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			release, err := client.Version().Current(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), release)
			return err
		}),
	}
}

func newVersionSupportedCmd() *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use:   "supported",
		Short: "List the API versions the monitoring server supports",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			specs, err := client.Version().Supported(cmd.Context())
			if err != nil {
				return err
			}

			if check != "" {
				releases := make([]string, len(specs))
				for i, spec := range specs {
					releases[i] = spec.Release
				}
				if update.APISupported(check, releases) {
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is supported\n", check)
					return err
				}
				return fmt.Errorf("version %s is not supported by the server", check)
			}

			for _, spec := range specs {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), spec.Release); err != nil {
					return err
				}
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&check, "check", "", "Verify a specific version is supported")

	return cmd
}
