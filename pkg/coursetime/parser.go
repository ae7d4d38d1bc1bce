// Package coursetime parses the raw meeting-time strings attached to scraped
// course sections into normalized weekly time slots.
//
// The registration system emits lines like
//
//	الأحد الثلاثاء: 11:00 ص - 11:50 ص
//
// one line per meeting pattern, with Arabic day names and the Arabic
// morning/evening markers (ص / م). The parser is pure and total: anything it
// cannot understand is dropped, never reported as an error.
package coursetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Unscheduled is the sentinel the scraper uses for sections without a
// meeting time.
const Unscheduled = "غير محدد"

// Slot is one weekly meeting: a day index (0 = Sunday .. 6 = Saturday) and a
// start/end time of day formatted as HH:MM:SS.
type Slot struct {
	Day   int    `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// dayIndex maps the scraper's day vocabulary to Sunday-first indexes.
var dayIndex = map[string]int{
	"الأحد":    0,
	"الإثنين":  1,
	"الاثنين":  1, // hamza-less spelling appears in some terms
	"الثلاثاء": 2,
	"الأربعاء": 3,
	"الخميس":   4,
	"الجمعة":   5,
	"السبت":    6,
}

const (
	morningMarker = "ص"
	eveningMarker = "م"
)

// entryPattern matches one line: day names, a colon, then "H:MM X - H:MM X"
// where X is the morning or evening marker.
var entryPattern = regexp.MustCompile(
	`^\s*(.+?)\s*:\s*(\d{1,2}):(\d{2})\s*([صم])\s*-\s*(\d{1,2}):(\d{2})\s*([صم])\s*$`)

// Parse converts a raw meeting-time string into its time slots.
//
// The unscheduled sentinel and empty input yield an empty result. Malformed
// lines and unknown day tokens are dropped. A line naming several days
// expands into one slot per day, preserving the order days appear in the
// line. Identical slots are not deduplicated.
func Parse(rawTime string) []Slot {
	rawTime = strings.TrimSpace(rawTime)
	if rawTime == "" || rawTime == Unscheduled {
		return nil
	}

	var slots []Slot
	for _, line := range strings.Split(rawTime, "\n") {
		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		start, ok := toClock(m[2], m[3], m[4])
		if !ok {
			continue
		}
		end, ok := toClock(m[5], m[6], m[7])
		if !ok {
			continue
		}

		for _, token := range strings.Fields(m[1]) {
			day, ok := dayIndex[token]
			if !ok {
				continue
			}
			slots = append(slots, Slot{Day: day, Start: start, End: end})
		}
	}
	return slots
}

// toClock converts a 12-hour time plus marker into a zero-padded HH:MM:00
// string. Hour 12 with the morning marker is midnight; any other hour with
// the evening marker gains twelve.
func toClock(hourStr, minuteStr, marker string) (string, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return "", false
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute > 59 {
		return "", false
	}

	switch marker {
	case morningMarker:
		if hour == 12 {
			hour = 0
		}
	case eveningMarker:
		if hour != 12 {
			hour += 12
		}
	default:
		return "", false
	}

	return fmt.Sprintf("%02d:%02d:00", hour, minute), true
}
