package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solarwatch/solaredge-cli/internal/api"
)

func newSitesPowerCmd() *cobra.Command {
	var (
		start    string
		end      string
		siteList string
	)

	cmd := &cobra.Command{
		Use:   "power [site]",
		Short: "Show power measurements in 15-minute resolution",
		Args:  cobra.MaximumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			params := &api.DateTimeRangeParams{}
			var err error
			if params.StartTime, err = parseDateTimeFlag("start", start); err != nil {
				return err
			}
			if params.EndTime, err = parseDateTimeFlag("end", end); err != nil {
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
				bulk, err := client.Sites().PowerBulk(ctx, ids, params)
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
			power, err := client.Sites().Power(ctx, id, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, power)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&siteList, "sites", "", "Comma-separated site IDs for a bulk query")

	return cmd
}

func newSitesPowerDetailsCmd() *cobra.Command {
	var (
		start  string
		end    string
		meters string
	)

	cmd := &cobra.Command{
		Use:   "power-details <site>",
		Short: "Show per-meter power measurements for a time range",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			params := &api.PowerDetailsParams{}
			var err error
			if params.StartTime, err = parseDateTimeFlag("start", start); err != nil {
				return err
			}
			if params.EndTime, err = parseDateTimeFlag("end", end); err != nil {
				return err
			}
			if meters != "" {
				if params.Meters, err = parseMeterTypes(meters); err != nil {
					return err
				}
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveSiteArg(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			details, err := client.Sites().PowerDetails(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, details)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&meters, "meters", "", "Meter filter, comma-separated (production,consumption,...)")

	return cmd
}

func newSitesStorageCmd() *cobra.Command {
	var (
		start   string
		end     string
		serials string
	)

	cmd := &cobra.Command{
		Use:   "storage <site>",
		Short: "Show battery state of energy and charge telemetry",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			params := &api.StorageDataParams{}
			var err error
			if params.StartTime, err = parseDateTimeFlag("start", start); err != nil {
				return err
			}
			if params.EndTime, err = parseDateTimeFlag("end", end); err != nil {
				return err
			}
			if serials != "" {
				for _, serial := range strings.Split(serials, ",") {
					if serial = strings.TrimSpace(serial); serial != "" {
						params.Serials = append(params.Serials, serial)
					}
				}
			}

			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveSiteArg(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			batteries, err := client.Sites().StorageData(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, batteries)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&serials, "serials", "", "Battery serial filter, comma-separated")

	return cmd
}

func newSitesMetersCmd() *cobra.Command {
	var (
		start    string
		end      string
		timeUnit string
		meters   string
	)

	cmd := &cobra.Command{
		Use:   "meters <site>",
		Short: "Show lifetime meter readings for a time range",
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
			readings, err := client.Sites().Meters(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, readings)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&timeUnit, "time-unit", "", "Granularity: quarter|hour|day|week|month|year")
	cmd.Flags().StringVar(&meters, "meters", "", "Meter filter, comma-separated (production,consumption,...)")

	return cmd
}

func newSitesSensorsCmd() *cobra.Command {
	var (
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "sensors <site>",
		Short: "Show environmental sensor readings for a time range",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			params := &api.SensorDataParams{}
			var err error
			if params.StartDate, err = parseDateTimeFlag("start", start); err != nil {
				return err
			}
			if params.EndDate, err = parseDateTimeFlag("end", end); err != nil {
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
			data, err := client.Sites().SensorData(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			return printJSON(cmd, data)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD HH:MM:SS)")

	return cmd
}
