package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"twitch-app-api/twitchapi"
	"twitch-app-api/ui"
)

// parseID parses a numeric add-on, category or section id.
func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a non-negative integer", arg)
	}
	return id, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// errorLine turns a fetch failure into a short, classified message.
func errorLine(err error) string {
	var apiErr *twitchapi.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.IsNotFound():
		return ui.ErrorStyle.Render("Not found: ") + err.Error()
	case errors.Is(err, twitchapi.ErrTransport):
		return ui.ErrorStyle.Render("Network error: ") + err.Error()
	case errors.Is(err, twitchapi.ErrDecode):
		return ui.ErrorStyle.Render("Unexpected response: ") + err.Error()
	default:
		return ui.ErrorStyle.Render("Error: ") + err.Error()
	}
}
