package content

import (
	"fmt"
	"time"
)

// RelativeAge formats the age of an instant as a short form: "now", "45s",
// "3h", "2d", "5mo", "1y". Used for the card timestamp label; the absolute
// instant goes in the title attribute alongside.
func RelativeAge(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < 10*time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo", int(d.Hours()/(24*30)))
	}
	return fmt.Sprintf("%dy", int(d.Hours()/(24*365)))
}

// ISOTime formats an instant for datetime and title attributes.
func ISOTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
