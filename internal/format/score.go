package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatScore returns the text shown on a side: the team name above the score.
// An empty name leaves only the score.
func FormatScore(team string, score int) string {
	team = strings.TrimSpace(team)
	if team == "" {
		return strconv.Itoa(score)
	}
	return fmt.Sprintf("%s\n%d", team, score)
}

// FormatClock returns a game clock: "M:SS", or "H:MM:SS" from one hour.
// Negative durations show as 0:00; fractions of a second round up so the
// clock reads 0:00 only once time is out.
func FormatClock(d time.Duration) string {
	if d <= 0 {
		return "0:00"
	}
	secs := int((d + time.Second - 1) / time.Second)
	h, m, s := secs/3600, (secs/60)%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatPeriod returns "1st", "2nd", "3rd", "4th", ... for a period number.
func FormatPeriod(n int) string {
	if n <= 0 {
		return ""
	}
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// ParseClock reads "M:SS", "H:MM:SS" or a plain number of seconds.
func ParseClock(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	parts := strings.Split(v, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock %q", v)
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid clock %q", v)
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second, nil
}
