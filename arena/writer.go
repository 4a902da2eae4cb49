package arena

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteResults writes arena results as CSV, one row per campaign.
func WriteResults(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)

	header := []string{"matchup", "winner", "outcome", "turns", "battles"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write results header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Matchup,
			r.Winner,
			r.Outcome.String(),
			strconv.Itoa(r.Turns),
			strconv.Itoa(r.Battles),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write result row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
