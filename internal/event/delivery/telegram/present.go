package telegram

import (
	"fmt"
	"strings"

	"natural-event-scheduler/internal/event"
	"natural-event-scheduler/internal/model"
)

const previewTimeLayout = "Mon, Jan 2 2006 15:04"

// formatDraft renders the event preview shown before saving.
func formatDraft(d *model.EventDraft) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📌 *%s*\n", escapeMarkdown(d.Title))
	fmt.Fprintf(&b, "🕐 %s → %s", d.Start.Format(previewTimeLayout), d.End.Format("15:04"))
	if d.EndTimeInferred {
		b.WriteString(" _(end time assumed)_")
	}
	if d.Location != "" {
		fmt.Fprintf(&b, "\n📍 %s", escapeMarkdown(d.Location))
	}
	if d.Notes != "" {
		fmt.Fprintf(&b, "\n📝 %s", escapeMarkdown(d.Notes))
	}
	if d.Recurrence != nil {
		fmt.Fprintf(&b, "\n🔁 %s", formatRecurrence(d.Recurrence))
	}
	return b.String()
}

func formatRecurrence(r *model.RecurrenceRule) string {
	var s string
	if r.Interval <= 1 {
		s = fmt.Sprintf("Repeats %s", r.Frequency)
	} else {
		s = fmt.Sprintf("Repeats every %d %s", r.Interval, frequencyUnit(r.Frequency))
	}
	if r.EndDate != nil {
		s += fmt.Sprintf(" until %s", r.EndDate.Format("Jan 2 2006"))
	}
	return s
}

func frequencyUnit(f model.Frequency) string {
	switch f {
	case model.FrequencyDaily:
		return "days"
	case model.FrequencyWeekly:
		return "weeks"
	case model.FrequencyMonthly:
		return "months"
	case model.FrequencyYearly:
		return "years"
	}
	return string(f)
}

// formatParseError renders a failed parse or save, with suggestions and
// whatever the language scan recognized.
func formatParseError(perr *event.ParseError) string {
	if perr == nil {
		return "Something went wrong. Please try again."
	}

	var b strings.Builder
	b.WriteString("⚠️ ")
	b.WriteString(perr.Message)

	if len(perr.Suggestions) > 0 {
		b.WriteString("\n")
		for _, s := range perr.Suggestions {
			fmt.Fprintf(&b, "\n• %s", s)
		}
	}

	if p := perr.Partial; p != nil && (p.Title != "" || p.FoundDate || p.FoundTime) {
		b.WriteString("\n\nWhat I did catch:")
		if p.Title != "" {
			fmt.Fprintf(&b, "\n• a possible title: \"%s\"", p.Title)
		}
		if p.FoundDate {
			b.WriteString("\n• a date word")
		}
		if p.FoundTime {
			b.WriteString("\n• a time of day")
		}
	}
	return b.String()
}

// escapeMarkdown guards user text against Telegram Markdown delimiters.
func escapeMarkdown(s string) string {
	r := strings.NewReplacer("*", "\\*", "_", "\\_", "`", "\\`", "[", "\\[")
	return r.Replace(s)
}
