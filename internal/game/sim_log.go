package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded simulation event.
type SimLogEntry struct {
	Frame    int
	Category string  // move, win, nav, attempts, audio, asset
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=0042] move      rejected         (122.5,48.0)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[F=%04d] %-9s %-16s %s", e.Frame, e.Category, e.Key, e.Value)
}

// SimLog collects structured events for a session. It is unbounded and
// machine-readable; the headless report and tests query it.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-frame position entries
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(frame int, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Frame:    frame,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(frame int, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(frame, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterFrameRange returns entries within [from, to] inclusive.
func (sl *SimLog) FilterFrameRange(from, to int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Frame >= from && e.Frame <= to {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a frame range.
func (sl *SimLog) FormatRange(from, to int) string {
	var sb strings.Builder
	for _, e := range sl.FilterFrameRange(from, to) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
