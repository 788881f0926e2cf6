package domain

import "fmt"

type TimeWindow struct {
	Key   string
	Label string
}

const (
	WindowMorning   = "morning"
	WindowNoon      = "noon"
	WindowAfternoon = "afternoon"
	WindowEvening   = "evening"
	WindowNight     = "night"
)

// catalog is ordered by time of day; the order drives display and Collapse output.
var catalog = []TimeWindow{
	{Key: WindowMorning, Label: "5AM-10AM"},
	{Key: WindowNoon, Label: "10AM-12PM"},
	{Key: WindowAfternoon, Label: "12PM-4PM"},
	{Key: WindowEvening, Label: "4PM-8PM"},
	{Key: WindowNight, Label: "8PM-5AM"},
}

func Windows() []TimeWindow {
	windows := make([]TimeWindow, len(catalog))
	copy(windows, catalog)
	return windows
}

func LookupWindow(key string) (TimeWindow, bool) {
	for _, window := range catalog {
		if window.Key == key {
			return window, true
		}
	}

	return TimeWindow{}, false
}

func WindowKeys() []string {
	keys := make([]string, 0, len(catalog))
	for _, window := range catalog {
		keys = append(keys, window.Key)
	}
	return keys
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s (%s)", w.Key, w.Label)
}
