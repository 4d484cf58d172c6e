package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solarwatch/solaredge-cli/internal/api"
)

func newSitesEnergyCmd() *cobra.Command {
	var (
		start    string
		end      string
		timeUnit string
		siteList string
	)

	cmd := &cobra.Command{
		Use:   "energy [site]",
		Short: "Show energy production for a date range",
		Args:  cobra.MaximumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			params := &api.EnergyParams{}
			var err error
			if params.StartDate, err = parseDateFlag("start", start); err != nil {
				return err
			}
			if params.EndDate, err = parseDateFlag("end", end); err != nil {
				return err
			}
			if params.TimeUnit, err = parseTimeUnit(timeUnit); err != nil {
				return err
			}

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
				bulk, err := client.Sites().EnergyBulk(ctx, ids, params)
				if err != nil {
					return err
				}
				return printJSON(cmd, bulk)
			}

			if len(args) == 0 {
				return fmt.Errorf("a site argument or --sites is required")
			}
			id, err := resolveSiteArg(ctx, client, args[0])
			if err != nil {
				return err
			}
			energy, err := client.Sites().Energy(ctx, id, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, energy)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Range end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeUnit, "time-unit", "", "Granularity: quarter|hour|day|week|month|year")
	cmd.Flags().StringVar(&siteList, "sites", "", "Comma-separated site IDs for a bulk query")

	return cmd
}

func newSitesEnergyDetailsCmd() *cobra.Command {
	var (
		start    string
		end      string
		timeUnit string
		meters   string
	)

	cmd := &cobra.Command{
		Use:   "energy-details <site>",
		Short: "Show per-meter energy measurements for a time range",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			params, err := buildMeterRangeParams(start, end, timeUnit, meters)
			if err != nil {
				return err
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveSiteArg(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			details, err := client.Sites().EnergyDetails(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, details)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&timeUnit, "time-unit", "", "Granularity: quarter|hour|day|week|month|year")
	cmd.Flags().StringVar(&meters, "meters", "", "Meter filter, comma-separated (production,consumption,...)")

	return cmd
}

func newSitesTimeFrameEnergyCmd() *cobra.Command {
	var (
		start    string
		end      string
		siteList string
	)

	cmd := &cobra.Command{
		Use:   "time-frame-energy [site]",
		Short: "Show total energy produced in a date range",
		Args:  cobra.MaximumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			params := &api.TimeFrameEnergyParams{}
			var err error
			if params.StartDate, err = parseDateFlag("start", start); err != nil {
				return err
			}
			if params.EndDate, err = parseDateFlag("end", end); err != nil {
				return err
			}

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
				bulk, err := client.Sites().TimeFrameEnergyBulk(ctx, ids, params)
				if err != nil {
					return err
				}
				return printJSON(cmd, bulk)
			}

			if len(args) == 0 {
				return fmt.Errorf("a site argument or --sites is required")
			}
			id, err := resolveSiteArg(ctx, client, args[0])
			if err != nil {
				return err
			}
			energy, err := client.Sites().TimeFrameEnergy(ctx, id, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, energy)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Range end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&siteList, "sites", "", "Comma-separated site IDs for a bulk query")

	return cmd
}

// buildMeterRangeParams assembles the shared start/end/time-unit/meters
// parameter set used by energy-details and meters.
func buildMeterRangeParams(start, end, timeUnit, meters string) (*api.MeterRangeParams, error) {
	params := &api.MeterRangeParams{}
	var err error
	if params.StartTime, err = parseDateTimeFlag("start", start); err != nil {
		return nil, err
	}
	if params.EndTime, err = parseDateTimeFlag("end", end); err != nil {
		return nil, err
	}
	if params.TimeUnit, err = parseTimeUnit(timeUnit); err != nil {
		return nil, err
	}
	if meters != "" {
		if params.Meters, err = parseMeterTypes(meters); err != nil {
			return nil, err
		}
	}
	return params, nil
}
