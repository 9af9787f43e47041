package gcalendar

import (
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"
)

// untilLayout is the RFC 5545 UTC form required for UNTIL.
const untilLayout = "20060102T150405Z"

// buildRRule renders a RecurrenceSpec as an iCalendar RRULE line for the
// Google Calendar API. The rendered rule is checked against the rrule
// grammar before it is accepted.
func buildRRule(spec RecurrenceSpec) (string, error) {
	freq := strings.ToUpper(strings.TrimSpace(spec.Frequency))
	switch freq {
	case "DAILY", "WEEKLY", "MONTHLY", "YEARLY":
	default:
		return "", fmt.Errorf("unknown frequency %q", spec.Frequency)
	}

	interval := spec.Interval
	if interval < 1 {
		interval = 1
	}

	content := fmt.Sprintf("FREQ=%s;INTERVAL=%d", freq, interval)
	if spec.EndDate != nil {
		content += ";UNTIL=" + spec.EndDate.UTC().Format(untilLayout)
	}

	if _, err := rrule.StrToRRule(content); err != nil {
		return "", fmt.Errorf("invalid rrule %q: %w", content, err)
	}

	return "RRULE:" + content, nil
}
