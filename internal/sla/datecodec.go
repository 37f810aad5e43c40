package sla

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/slacalc/internal/domain"
)

const (
	// DisplayZone is the civil time zone used for every rendered timestamp.
	DisplayZone = "America/Sao_Paulo"

	displayDateLayout      = "02/01/2006"
	displayTimestampLayout = "02/01/2006 15:04"
	maxMaskedDigits        = 8
)

var displayDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

var displayLocation = loadDisplayLocation()

func loadDisplayLocation() *time.Location {
	loc, err := time.LoadLocation(DisplayZone)
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

// DisplayLocation returns the location timestamps are rendered in.
func DisplayLocation() *time.Location {
	return displayLocation
}

// ParseDisplay parses an exact DD/MM/YYYY string. It returns false when the
// text does not match the pattern or names a day the calendar does not have.
func ParseDisplay(text string) (domain.CalendarDate, bool) {
	if !displayDatePattern.MatchString(text) {
		return domain.CalendarDate{}, false
	}
	parts := strings.Split(text, "/")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	return domain.NewCalendarDate(year, time.Month(month), day)
}

// FormatDisplay renders d as DD/MM/YYYY.
func FormatDisplay(d domain.CalendarDate) string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day(), int(d.Month()), d.Year())
}

// MaskInput formats raw typing into the progressive DD, DD/MM, DD/MM/YYYY
// shape. Only the current text is consulted.
func MaskInput(raw string) string {
	digits := onlyDigits(raw, maxMaskedDigits)

	var b strings.Builder
	for i, r := range digits {
		if i == 2 || i == 4 {
			b.WriteByte('/')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskCaseID keeps at most six digits of raw input.
func MaskCaseID(raw string) string {
	return onlyDigits(raw, domain.CaseIDLength)
}

func onlyDigits(raw string, limit int) string {
	out := make([]rune, 0, limit)
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, r)
	}
	return string(out)
}

// FormatTimestamp renders t as DD/MM/YYYY HH:MM (24h) in the display zone.
// The zero time renders as an empty string.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(displayLocation).Format(displayTimestampLayout)
}

// FormatTimestampString parses an ISO-8601 instant and renders it like
// FormatTimestamp. Unparseable input renders as an empty string.
func FormatTimestampString(iso string) string {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(iso))
	if err != nil {
		return ""
	}
	return FormatTimestamp(t)
}

// Today returns the current calendar date in the display zone.
func Today(now time.Time) domain.CalendarDate {
	local := now.In(displayLocation)
	d, _ := domain.NewCalendarDate(local.Year(), local.Month(), local.Day())
	return d
}
