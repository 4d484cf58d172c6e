package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solarwatch/solaredge-cli/internal/api"
)

func newEquipmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "equipment",
		Aliases: []string{"eq"},
		Short:   "Inspect inverters, sensors and their telemetry",
	}

	cmd.AddCommand(newEquipmentListCmd())
	cmd.AddCommand(newEquipmentSensorsCmd())
	cmd.AddCommand(newEquipmentDataCmd())
	cmd.AddCommand(newEquipmentChangeLogCmd())

	return cmd
}

func newEquipmentListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list <site>",
		Aliases: []string{"ls"},
		Short:   "List the inverters reporting in a site",
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveSiteArg(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			reporters, err := client.Equipment().List(cmd.Context(), id)
			if err != nil {
				return err
			}

			if wantJSON() {
				return printJSON(cmd, reporters)
			}
			if len(reporters) == 0 {
				printIfNotQuiet(cmd, "No equipment found\n")
				return nil
			}
			w := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(w, "SERIAL\tNAME\tMANUFACTURER\tMODEL")
			for _, r := range reporters {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.SerialNumber, r.Name, r.Manufacturer, r.Model)
			}
			return w.Flush()
		}),
	}
	return cmd
}

func newEquipmentSensorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sensors <site>",
		Short: "List the environmental sensors connected in a site",
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
			sensors, err := client.Equipment().Sensors(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, sensors)
		}),
	}
}

func newEquipmentDataCmd() *cobra.Command {
	var (
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "data <site> <serial>",
		Short: "Show inverter telemetry for a time range",
		Long:  "Show an inverter's technical telemetry (voltages, currents, temperature, mode) for a time range of up to one week.",
		Args:  cobra.ExactArgs(2),
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
			id, err := resolveSiteArg(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			telemetries, err := client.Equipment().Data(cmd.Context(), id, args[1], params)
			if err != nil {
				return err
			}
			return printJSON(cmd, telemetries)
		}),
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD HH:MM:SS)")

	return cmd
}

func newEquipmentChangeLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "changelog <site> <serial>",
		Aliases: []string{"change-log"},
		Short:   "Show equipment replacements for a component",
		Args:    cobra.ExactArgs(2),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			id, err := resolveSiteArg(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			entries, err := client.Equipment().ChangeLog(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}

			if wantJSON() {
				return printJSON(cmd, entries)
			}
			if len(entries) == 0 {
				printIfNotQuiet(cmd, "No replacements recorded\n")
				return nil
			}
			w := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(w, "DATE\tSERIAL\tPART NUMBER")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Date, e.SerialNumber, e.PartNumber)
			}
			return w.Flush()
		}),
	}
	return cmd
}
