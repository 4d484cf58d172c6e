package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/solarwatch/solaredge-cli/internal/api"
)

func newSitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sites",
		Aliases: []string{"site", "s"},
		Short:   "Inspect sites and their measurements",
		Long:    "List sites and query their details, energy, power and environmental data.",
	}

	cmd.AddCommand(newSitesListCmd())
	cmd.AddCommand(newSitesGetCmd())
	cmd.AddCommand(newSitesDataPeriodCmd())
	cmd.AddCommand(newSitesOverviewCmd())
	cmd.AddCommand(newSitesPowerFlowCmd())
	cmd.AddCommand(newSitesInventoryCmd())
	cmd.AddCommand(newSitesEnvBenefitsCmd())
	cmd.AddCommand(newSitesImageCmd())
	cmd.AddCommand(newSitesEnergyCmd())
	cmd.AddCommand(newSitesEnergyDetailsCmd())
	cmd.AddCommand(newSitesTimeFrameEnergyCmd())
	cmd.AddCommand(newSitesPowerCmd())
	cmd.AddCommand(newSitesPowerDetailsCmd())
	cmd.AddCommand(newSitesStorageCmd())
	cmd.AddCommand(newSitesMetersCmd())
	cmd.AddCommand(newSitesSensorsCmd())

	return cmd
}

func newSitesListCmd() *cobra.Command {
	var (
		size      int
		start     int
		search    string
		sortBy    string
		sortOrder string
		status    string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List sites the API key can access",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			params := &api.SitesListParams{
				Size:         size,
				StartIndex:   start,
				SearchText:   search,
				SortProperty: api.SiteSortBy(sortBy),
			}
			order, err := parseSortOrder(sortOrder)
			if err != nil {
				return err
			}
			params.SortOrder = order
			if status != "" {
				statuses, err := parseSiteStatuses(status)
				if err != nil {
					return err
				}
				params.Status = statuses
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			sites, err := client.Sites().List(cmd.Context(), params)
			if err != nil {
				return err
			}

			if wantJSON() {
				return printJSON(cmd, sites)
			}
			if len(sites) == 0 {
				printIfNotQuiet(cmd, "No sites found\n")
				return nil
			}
			w := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tPEAK POWER\tCOUNTRY")
			for _, site := range sites {
				fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n",
					site.ID, site.Name, site.Status, site.PeakPower, site.Location.Country)
			}
			return w.Flush()
		}),
	}

	cmd.Flags().IntVar(&size, "size", 0, "Maximum number of sites to return (vendor cap 100)")
	cmd.Flags().IntVar(&start, "start-index", 0, "First site index, for paging past the cap")
	cmd.Flags().StringVar(&search, "search", "", "Search text (matches name, address, notes, ...)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Sort property (Name, Country, PeakPower, ...)")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "", "Sort order: asc|desc")
	cmd.Flags().StringVar(&status, "status", "", "Status filter, comma-separated (active,pending,disabled,all)")

	return cmd
}

func newSitesGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "get <site>...",
		Aliases: []string{"g", "details"},
		Short:   "Get site details by ID or name",
		Args:    cobra.MinimumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if len(args) == 1 {
				id, err := resolveSiteArg(ctx, client, args[0])
				if err != nil {
					return err
				}
				site, err := client.Sites().Details(ctx, id)
				if err != nil {
					return err
				}
				return printJSON(cmd, site)
			}

			// Multiple sites fetch concurrently; results keep argument order.
			sites := make([]*api.SiteDetails, len(args))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(4)
			for i, arg := range args {
				i, arg := i, arg
				g.Go(func() error {
					id, err := resolveSiteArg(gctx, client, arg)
					if err != nil {
						return err
					}
					site, err := client.Sites().Details(gctx, id)
					if err != nil {
						return err
					}
					sites[i] = site
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return printJSON(cmd, sites)
		}),
	}
	return cmd
}

func newSitesDataPeriodCmd() *cobra.Command {
	var siteList string

	cmd := &cobra.Command{
		Use:   "data-period [site]",
		Short: "Show the period a site has measurement data for",
		Args:  cobra.MaximumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if siteList != "" {
				if len(args) > 0 {
					return fmt.Errorf("--sites cannot be combined with a site argument")
				}
				ids, err := parseSiteIDList(siteList)
				if err != nil {
					return err
				}
				periods, err := client.Sites().DataPeriodBulk(ctx, ids)
				if err != nil {
					return err
				}
				return printJSON(cmd, periods)
			}

			if len(args) == 0 {
				return fmt.Errorf("a site argument or --sites is required")
			}
			id, err := resolveSiteArg(ctx, client, args[0])
			if err != nil {
				return err
			}
			period, err := client.Sites().DataPeriod(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(cmd, period)
		}),
	}

	cmd.Flags().StringVar(&siteList, "sites", "", "Comma-separated site IDs for a bulk query")

	return cmd
}

func newSitesOverviewCmd() *cobra.Command {
	var siteList string

	cmd := &cobra.Command{
		Use:   "overview [site]",
		Short: "Show a site's lifetime and recent production summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if siteList != "" {
				if len(args) > 0 {
					return fmt.Errorf("--sites cannot be combined with a site argument")
				}
				ids, err := parseSiteIDList(siteList)
				if err != nil {
					return err
				}
				overviews, err := client.Sites().OverviewBulk(ctx, ids)
				if err != nil {
					return err
				}
				return printJSON(cmd, overviews)
			}

			if len(args) == 0 {
				return fmt.Errorf("a site argument or --sites is required")
			}
			id, err := resolveSiteArg(ctx, client, args[0])
			if err != nil {
				return err
			}
			overview, err := client.Sites().Overview(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(cmd, overview)
		}),
	}

	cmd.Flags().StringVar(&siteList, "sites", "", "Comma-separated site IDs for a bulk query")

	return cmd
}

func newSitesPowerFlowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "power-flow <site>",
		Short: "Show the site's current power flow between grid, load, PV and storage",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveSiteArg(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			flow, err := client.Sites().PowerFlow(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, flow)
		}),
	}
}

func newSitesInventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory <site>",
		Short: "List the SolarEdge equipment installed in a site",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveSiteArg(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			inventory, err := client.Sites().Inventory(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, inventory)
		}),
	}
}

func newSitesEnvBenefitsCmd() *cobra.Command {
	var units string

	cmd := &cobra.Command{
		Use:   "env-benefits <site>",
		Short: "Show CO2 savings and equivalent trees planted",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			var params *api.EnvBenefitsParams
			switch strings.ToLower(strings.TrimSpace(units)) {
			case "":
			case "metrics", "metric":
				params = &api.EnvBenefitsParams{SystemUnits: api.UnitsMetrics}
			case "imperial":
				params = &api.EnvBenefitsParams{SystemUnits: api.UnitsImperial}
			default:
				return fmt.Errorf("invalid --units %q: must be metrics or imperial", units)
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveSiteArg(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			benefits, err := client.Sites().EnvBenefits(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, benefits)
		}),
	}

	cmd.Flags().StringVar(&units, "units", "", "Unit system: metrics|imperial (defaults to account setting)")

	return cmd
}

func newSitesImageCmd() *cobra.Command {
	var (
		maxWidth  int
		maxHeight int
		installer bool
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "image <site>",
		Short: "Download the site image",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveSiteArg(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}

			var data []byte
			if installer {
				if maxWidth > 0 || maxHeight > 0 {
					return fmt.Errorf("--installer does not support scaling")
				}
				data, err = client.Sites().InstallerImage(cmd.Context(), id)
			} else {
				var params *api.ImageParams
				if maxWidth > 0 || maxHeight > 0 {
					params = &api.ImageParams{MaxWidth: maxWidth, MaxHeight: maxHeight}
				}
				data, err = client.Sites().Image(cmd.Context(), id, params)
			}
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, data, 0o644); err != nil {
					return fmt.Errorf("failed to write image: %w", err)
				}
				printIfNotQuiet(cmd, "Wrote %d bytes to %s\n", len(data), outPath)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}),
	}

	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "Scale the image to fit this width")
	cmd.Flags().IntVar(&maxHeight, "max-height", 0, "Scale the image to fit this height")
	cmd.Flags().BoolVar(&installer, "installer", false, "Download the installer logo instead")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the image to a file instead of stdout")

	return cmd
}
