package history

import (
	"fmt"
	"strings"
)

const timeLayout = "2006-01-02 15:04:05"

// Format renders entries one per block with zero-padded indices, newest first
// as returned by List.
func Format(entries []Entry) string {
	if len(entries) == 0 {
		return "No conversions recorded\n"
	}

	var output strings.Builder

	indexWidth := len(fmt.Sprintf("%d", len(entries)))
	// Align continuation lines with the text after "[NN] "
	indent := strings.Repeat(" ", indexWidth+3)

	for i, e := range entries {
		_, _ = fmt.Fprintf(&output, "[%0*d] %s %s %s", indexWidth, i+1,
			e.CreatedAt.Local().Format(timeLayout), e.Mode, e.Direction)
		if e.Mode == "shift" {
			_, _ = fmt.Fprintf(&output, " (key %d)", e.Key)
		}
		_, _ = fmt.Fprintln(&output)
		_, _ = fmt.Fprintf(&output, "%sInput:  %s\n", indent, e.Input)
		_, _ = fmt.Fprintf(&output, "%sOutput: %s\n", indent, e.Output)
	}

	return output.String()
}
