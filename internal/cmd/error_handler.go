package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/solarwatch/solaredge-cli/internal/api"
	"github.com/solarwatch/solaredge-cli/internal/config"
	"github.com/solarwatch/solaredge-cli/internal/resolve"
)

// HandleError processes an error and returns a user-friendly message with suggestions
func HandleError(err error) string {
	if err == nil {
		return ""
	}

	var msg strings.Builder

	var apiErr *api.APIError
	var queryErr *api.QueryError
	var transportErr *api.TransportError
	var decodeErr *api.DecodeError
	var ambiguousErr *resolve.AmbiguousError

	switch {
	case errors.Is(err, config.ErrNotConfigured):
		msg.WriteString("No API key configured.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Run: solaredge auth login --api-key <key>\n")
		msg.WriteString("  - Or set the SOLAREDGE_API_KEY environment variable\n")

	case errors.As(err, &queryErr):
		fmt.Fprintf(&msg, "Invalid request parameters: %s\n\n", queryErr.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Check required date/time range flags (--start, --end)\n")
		msg.WriteString("  - Dates use YYYY-MM-DD, datetimes YYYY-MM-DD HH:MM:SS\n")

	case errors.As(err, &apiErr):
		fmt.Fprintf(&msg, "API error (HTTP %d): %s\n\n", apiErr.StatusCode, apiErr.Body)
		msg.WriteString(suggestionsForStatusCode(apiErr.StatusCode))

	case errors.As(err, &decodeErr):
		fmt.Fprintf(&msg, "Unexpected API response: %s\n\n", decodeErr.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Use --debug to inspect the request\n")
		msg.WriteString("  - The monitoring API may have changed its response format\n")

	case errors.As(err, &ambiguousErr):
		fmt.Fprintf(&msg, "Error: %s\n\n", err.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Use the site ID instead of the name\n")
		msg.WriteString("  - Make the name more specific\n")

	case errors.As(err, &transportErr), strings.Contains(err.Error(), "connection refused"):
		fmt.Fprintf(&msg, "Request failed: %s\n\n", err.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Check your network connection\n")
		msg.WriteString("  - Verify the base URL: solaredge auth status\n")

	default:
		fmt.Fprintf(&msg, "Error: %s\n", err.Error())
	}

	return msg.String()
}

func suggestionsForStatusCode(code int) string {
	var suggestions strings.Builder
	suggestions.WriteString("Suggestions:\n")

	switch code {
	case http.StatusBadRequest:
		suggestions.WriteString("  - Check your request parameters\n")
		suggestions.WriteString("  - Use --debug to see the full request\n")

	case http.StatusUnauthorized:
		suggestions.WriteString("  - Your API key may be invalid or revoked\n")
		suggestions.WriteString("  - Run: solaredge auth login --api-key <key>\n")

	case http.StatusForbidden:
		suggestions.WriteString("  - Your API key has no access to this site\n")
		suggestions.WriteString("  - Account-level keys are required for accounts commands\n")

	case http.StatusNotFound:
		suggestions.WriteString("  - The site or equipment doesn't exist\n")
		suggestions.WriteString("  - Check the ID or serial number is correct\n")

	case http.StatusTooManyRequests:
		suggestions.WriteString("  - The monitoring API allows 300 requests per day per key\n")
		suggestions.WriteString("  - Wait and retry, or reduce request frequency\n")

	case 500, 502, 503, 504:
		suggestions.WriteString("  - Server error - not your fault\n")
		suggestions.WriteString("  - Wait and retry\n")

	default:
		suggestions.WriteString("  - Use --debug for more details\n")
	}

	return suggestions.String()
}
