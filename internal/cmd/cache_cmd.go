package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solarwatch/solaredge-cli/internal/cache"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local site list cache",
	}

	cmd.AddCommand(newCacheClearCmd())

	return cmd
}

func newCacheClearCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop cached site listings",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if all {
				dir, err := cache.DefaultDir()
				if err != nil {
					return fmt.Errorf("failed to locate cache directory: %w", err)
				}
				cache.ClearAll(dir)
				printIfNotQuiet(cmd, "Cleared all cached data\n")
				return nil
			}
			invalidateSiteIndex()
			printIfNotQuiet(cmd, "Cleared the site list cache\n")
			return nil
		}),
	}

	cmd.Flags().BoolVar(&all, "all", false, "Clear cached data for every profile and key")

	return cmd
}
