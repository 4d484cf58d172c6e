package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solarwatch/solaredge-cli/internal/api"
	"github.com/solarwatch/solaredge-cli/internal/config"
)

// newAuthCmd returns the auth command with subcommands
func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth",
		Aliases: []string{"au"},
		Short:   "Manage API credentials",
		Long:    "Configure and manage SolarEdge monitoring API keys stored securely in your OS keychain.",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthStatusCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	cmd.AddCommand(newAuthProfilesCmd())
	cmd.AddCommand(newAuthSwitchCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var (
		apiKey      string
		baseURL     string
		keyInHeader bool
		profile     string
		noVerify    bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save an API key to the OS keychain",
		Long: strings.TrimSpace(`
Save a SolarEdge monitoring API key securely to your OS keychain.

Generate a key in the monitoring portal under Admin > Site Access > API
Access (site-level) or in the account admin panel (account-level).

The key is verified against the API before saving; use --no-verify to
skip the check.`),
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				return fmt.Errorf("--api-key is required")
			}

			account := config.Account{
				APIKey:      apiKey,
				BaseURL:     strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
				KeyInHeader: keyInHeader,
			}

			if !noVerify {
				client := newClientFactory().newClient(config.ClientConfig{
					APIKey:      account.APIKey,
					BaseURL:     account.BaseURL,
					KeyInHeader: account.KeyInHeader,
				})
				if _, err := client.Version().Current(cmd.Context()); err != nil {
					return fmt.Errorf("API key verification failed: %w", err)
				}
			}

			if err := config.SaveProfile(profile, account); err != nil {
				return err
			}
			// A key change may expose a different site list.
			invalidateSiteIndex()

			name := profile
			if name == "" {
				name = "default"
			}
			printIfNotQuiet(cmd, "Saved credentials to profile %q\n", name)
			return nil
		}),
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Monitoring API key (required)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Monitoring API base URL (default production)")
	cmd.Flags().BoolVar(&keyInHeader, "key-in-header", false, "Send the key as the X-API-Key header instead of a query parameter")
	cmd.Flags().StringVar(&profile, "profile", "", "Profile to save the credentials under")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip the API key verification request")

	return cmd
}

func newAuthStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active credentials and verify them",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ResolveClientConfig(flags.APIKey, flags.BaseURL)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			baseURL := cfg.BaseURL
			if baseURL == "" {
				baseURL = api.DefaultBaseURL
			}
			fmt.Fprintf(out, "Base URL: %s\n", baseURL)
			fmt.Fprintf(out, "API key:  %s\n", maskKey(cfg.APIKey))
			placement := "query parameter"
			if cfg.KeyInHeader {
				placement = "X-API-Key header"
			}
			fmt.Fprintf(out, "Key sent as: %s\n", placement)
			if profile, err := config.CurrentProfile(); err == nil {
				fmt.Fprintf(out, "Profile:  %s\n", profile)
			}

			client := newClientFactory().newClient(cfg)
			release, err := client.Version().Current(cmd.Context())
			if err != nil {
				return fmt.Errorf("credential check failed: %w", err)
			}
			fmt.Fprintf(out, "API version: %s (key OK)\n", release)
			return nil
		}),
	}
	return cmd
}

func newAuthLogoutCmd() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials from the OS keychain",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			invalidateSiteIndex()
			if err := config.DeleteProfile(profile); err != nil {
				return err
			}
			name := profile
			if name == "" {
				name = "default"
			}
			printIfNotQuiet(cmd, "Removed credentials for profile %q\n", name)
			return nil
		}),
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile to remove")

	return cmd
}

func newAuthProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List stored credential profiles",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			profiles, err := config.ListProfiles()
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				printIfNotQuiet(cmd, "No profiles stored\n")
				return nil
			}
			current, _ := config.CurrentProfile()
			out := cmd.OutOrStdout()
			for _, p := range profiles {
				marker := " "
				if p == current {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, p)
			}
			return nil
		}),
	}
}

func newAuthSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <profile>",
		Short: "Switch the current credential profile",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			// Fails with ErrNotConfigured when the profile doesn't exist.
			if _, err := config.LoadProfile(args[0]); err != nil {
				return err
			}
			if err := config.SetCurrentProfile(args[0]); err != nil {
				return err
			}
			printIfNotQuiet(cmd, "Switched to profile %q\n", args[0])
			return nil
		}),
	}
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
