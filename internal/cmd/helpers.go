package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/solarwatch/solaredge-cli/internal/api"
	"github.com/solarwatch/solaredge-cli/internal/filter"
)

// getClient creates an API client from stored credentials
func getClient() (*api.Client, error) {
	return newClientFactory().client()
}

// newTabWriter creates a tabwriter for text output
func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

// printJSON outputs data as JSON with optional --jq filtering
func printJSON(cmd *cobra.Command, v any) error {
	var (
		data []byte
		err  error
	)
	if flags.Compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	if flags.JQ != "" {
		data, err = filter.ApplyToJSON(data, flags.JQ)
		if err != nil {
			return err
		}
	}
	out := cmd.OutOrStdout()
	_, err = fmt.Fprintln(out, strings.TrimRight(string(data), "\n"))
	return err
}

// wantJSON reports whether a table command should emit JSON instead.
func wantJSON() bool {
	return flags.JSON || flags.JQ != ""
}

// printIfNotQuiet prints to stderr only if not in quiet mode
func printIfNotQuiet(cmd *cobra.Command, format string, args ...any) {
	if !flags.Quiet {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
	}
}

// RunE wraps a command function with enhanced error handling
func RunE(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil {
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), HandleError(err))
			// Return a handled error so tests can still inspect the original message.
			return &handledError{err: err, exitCode: ExitCode(err)}
		}
		return nil
	}
}

// parseSiteIDList parses a comma-separated list of numeric site IDs.
func parseSiteIDList(input string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid site ID %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one site ID is required")
	}
	return ids, nil
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// parseDateFlag parses a required YYYY-MM-DD flag value.
func parseDateFlag(name, value string) (api.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return api.Date{}, fmt.Errorf("--%s is required", name)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return api.Date{}, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", name, value)
	}
	return api.NewDate(t.Year(), t.Month(), t.Day()), nil
}

// parseDateTimeFlag parses a required datetime flag value. A bare date is
// accepted and means midnight.
func parseDateTimeFlag(name, value string) (api.DateTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return api.DateTime{}, fmt.Errorf("--%s is required", name)
	}
	t, err := time.Parse(dateTimeLayout, value)
	if err != nil {
		t, err = time.Parse(dateLayout, value)
		if err != nil {
			return api.DateTime{}, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD HH:MM:SS", name, value)
		}
	}
	return api.NewDateTime(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second()), nil
}

var timeUnits = map[string]api.TimeUnit{
	"quarter": api.TimeUnitQuarterOfAnHour,
	"hour":    api.TimeUnitHour,
	"day":     api.TimeUnitDay,
	"week":    api.TimeUnitWeek,
	"month":   api.TimeUnitMonth,
	"year":    api.TimeUnitYear,
}

// parseTimeUnit maps a friendly flag value onto the vendor token. The raw
// token is accepted too.
func parseTimeUnit(value string) (api.TimeUnit, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if unit, ok := timeUnits[strings.ToLower(value)]; ok {
		return unit, nil
	}
	for _, unit := range timeUnits {
		if string(unit) == strings.ToUpper(value) {
			return unit, nil
		}
	}
	return "", fmt.Errorf("invalid --time-unit %q: must be quarter, hour, day, week, month or year", value)
}

var meterTypes = map[string]api.MeterType{
	"production":      api.MeterProduction,
	"consumption":     api.MeterConsumption,
	"selfconsumption": api.MeterSelfConsumption,
	"feedin":          api.MeterFeedIn,
	"purchased":       api.MeterPurchased,
}

// parseMeterTypes parses a comma-separated list of meter names.
func parseMeterTypes(input string) ([]api.MeterType, error) {
	var meters []api.MeterType
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		meter, ok := meterTypes[strings.ToLower(part)]
		if !ok {
			return nil, fmt.Errorf("invalid meter %q: must be production, consumption, selfconsumption, feedin or purchased", part)
		}
		meters = append(meters, meter)
	}
	return meters, nil
}

var siteStatuses = map[string]api.SiteStatus{
	"active":               api.SiteStatusActive,
	"pending":              api.SiteStatusPending,
	"pendingcommunication": api.SiteStatusPendingCommunication,
	"disabled":             api.SiteStatusDisabled,
	"all":                  api.SiteStatusAll,
}

// parseSiteStatuses parses a comma-separated list of status filters.
func parseSiteStatuses(input string) ([]api.SiteStatus, error) {
	var statuses []api.SiteStatus
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		status, ok := siteStatuses[strings.ToLower(part)]
		if !ok {
			return nil, fmt.Errorf("invalid status %q: must be active, pending, pendingcommunication, disabled or all", part)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// parseSortOrder parses an asc/desc flag value.
func parseSortOrder(value string) (api.SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return "", nil
	case "asc":
		return api.SortAscending, nil
	case "desc":
		return api.SortDescending, nil
	default:
		return "", fmt.Errorf("invalid --sort-order %q: must be asc or desc", value)
	}
}
