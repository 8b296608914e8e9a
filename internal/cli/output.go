package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"hydro-command/internal/reconciler"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatReadings(readings map[string]float64) string {
	keys := sortedKeys(readings)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%.2f", k, readings[k])
	}
	return strings.Join(parts, " ")
}

func formatState(s reconciler.State) string {
	switch s.Phase {
	case reconciler.PhaseAwaitingPickup:
		return fmt.Sprintf("%s: waiting for device pickup (%s queued)", s.PumpID, s.Duration)
	case reconciler.PhaseRunning:
		return fmt.Sprintf("%s: running, %s remaining", s.PumpID, s.Remaining.Round(time.Second))
	case reconciler.PhaseStopped:
		return fmt.Sprintf("%s: stopping", s.PumpID)
	}
	return fmt.Sprintf("%s: idle", s.PumpID)
}
