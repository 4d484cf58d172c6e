package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/solarwatch/solaredge-cli/internal/debug"
	"github.com/solarwatch/solaredge-cli/internal/filter"
)

// rootFlags holds global CLI flags
type rootFlags struct {
	APIKey  string
	BaseURL string
	Profile string
	JQ      string
	JSON    bool
	Compact bool
	Debug   bool
	Quiet   bool
	NoCache bool
	Timeout time.Duration
}

// flags holds the global command flags. This is package-level mutable state
// that MUST be reset at the start of every Execute() call. Tests depend on
// this reset to get clean state; any code that reads flags outside of a
// command's RunE is reading stale data from the previous Execute() call.
var flags = rootFlags{
	Timeout: defaultTimeout,
}

const defaultTimeout = 30 * time.Second

func parseBoolEnv(key string) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return false
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// Execute runs the root command
func Execute(ctx context.Context, args []string) error {
	// Reset flags to defaults for each execution. This is critical for test
	// isolation — see the invariant comment on the flags declaration above.
	flags = rootFlags{
		Compact: parseBoolEnv("SOLAREDGE_COMPACT"),
		Timeout: defaultTimeout,
	}

	root := &cobra.Command{
		Use:           "solaredge",
		Short:         "CLI for the SolarEdge monitoring API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if flags.JQ != "" {
				flags.JQ = filter.NormalizeExpression(flags.JQ)
			}
			if flags.NoCache {
				// The cache package reads this per operation, so a flag
				// can flip it for a single invocation.
				_ = os.Setenv("SOLAREDGE_NO_CACHE", "1")
			}
			if flags.Profile != "" {
				_ = os.Setenv("SOLAREDGE_PROFILE", flags.Profile)
			}

			debug.SetupLogger(flags.Debug)
			ctx = debug.WithDebug(ctx, flags.Debug)

			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetContext(ctx)
	root.SetArgs(args)

	root.PersistentFlags().StringVar(&flags.APIKey, "api-key", "", "API key (overrides stored credentials; env SOLAREDGE_API_KEY)")
	root.PersistentFlags().StringVar(&flags.BaseURL, "base-url", "", "Monitoring API base URL (env SOLAREDGE_BASE_URL)")
	root.PersistentFlags().StringVar(&flags.Profile, "profile", "", "Credential profile to use (env SOLAREDGE_PROFILE)")
	root.PersistentFlags().StringVarP(&flags.JQ, "jq", "q", "", "JQ expression to filter JSON output")
	root.PersistentFlags().BoolVarP(&flags.JSON, "json", "j", false, "Force JSON output for table commands")
	root.PersistentFlags().BoolVar(&flags.Compact, "compact-json", flags.Compact, "Compact JSON output (no indentation; env SOLAREDGE_COMPACT)")
	root.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "Q", false, "Suppress non-essential output")
	root.PersistentFlags().BoolVar(&flags.NoCache, "no-cache", false, "Bypass the site list cache (env SOLAREDGE_NO_CACHE)")
	root.PersistentFlags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "HTTP request timeout (e.g., 30s, 2m)")

	root.AddCommand(newAuthCmd())
	root.AddCommand(newSitesCmd())
	root.AddCommand(newEquipmentCmd())
	root.AddCommand(newAccountsCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newCacheCmd())

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errAlreadyHandled) {
			_, _ = fmt.Fprintln(root.ErrOrStderr(), err) //nolint:errcheck
		}
		return err
	}
	return nil
}

// errAlreadyHandled marks errors whose message was already printed by RunE.
var errAlreadyHandled = errors.New("already handled")

// handledError wraps an error that has been reported to the user, carrying
// the exit code RunE computed for it.
type handledError struct {
	err      error
	exitCode int
}

func (e *handledError) Error() string { return e.err.Error() }

func (e *handledError) Unwrap() error { return e.err }

func (e *handledError) Is(target error) bool { return target == errAlreadyHandled }
