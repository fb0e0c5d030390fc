package logquery

import (
	"fmt"
	"strings"
	"time"
)

// BoundLayout is the layout of query range bounds.
const BoundLayout = "2006-01-02T15:04:05.000Z"

// inputLayouts are the accepted layouts of operator supplied date times, all read as platform-local wall time.
var inputLayouts = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"Jan 2, 2006 @ 15:04:05",
}

// Window is an inclusive time range.
type Window struct {
	From time.Time
	To   time.Time
}

// NewWindow returns the window of the period that ends at end.
func NewWindow(end time.Time, period time.Duration) Window {
	return Window{
		From: end.Add(-period),
		To:   end,
	}
}

// Bounds returns the window bounds in UTC with millisecond precision.
func (w Window) Bounds() (string, string) {
	return w.From.UTC().Format(BoundLayout), w.To.UTC().Format(BoundLayout)
}

// ParseInput parses an operator supplied date time as wall time in loc.
// A trailing Z is ignored, input is always platform-local time.
func ParseInput(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("can't parse date time %q, expected format like 2023-01-01T03:00:00.000Z", value)
}

// ParseTimestamp parses a log document timestamp, which is always UTC.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}

	t, kibanaErr := time.ParseInLocation("Jan 2, 2006 @ 15:04:05", value, time.UTC)
	if kibanaErr == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("can't parse timestamp %q: %w", value, err)
}
