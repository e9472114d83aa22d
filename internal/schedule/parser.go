// Package schedule turns course meeting-time descriptors into a weekly grid.
package schedule

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/beego/beego/v2/core/logs"

	"github.com/yeongbeomSong/CourseEnroll/models"
)

// Day indexes the teaching week, Monday first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Teaching hours run 9:00-21:00; the last startable hour is 20.
const (
	FirstHour = 9
	LastHour  = 21
)

// Interval is one meeting time inside the teaching week.
type Interval struct {
	Day       Day
	StartHour int
	EndHour   int
}

// Registry descriptors use Korean day names; older records carry the English
// abbreviations, so both are accepted.
var dayNames = map[string]Day{
	"월": Monday, "화": Tuesday, "수": Wednesday, "목": Thursday, "금": Friday,
	"Mon": Monday, "Tue": Tuesday, "Wed": Wednesday, "Thu": Thursday, "Fri": Friday,
}

// DayLabels are the display names in grid order.
var DayLabels = [...]string{"월", "화", "수", "목", "금"}

var segmentPattern = regexp.MustCompile(`^(월|화|수|목|금|Mon|Tue|Wed|Thu|Fri)\s*(\d{1,2}):(\d{2})-(\d{1,2}):(\d{2})$`)

// ParseDescriptor expands a descriptor into its meeting intervals. Segments
// that do not match the expected pattern, or whose hours fall outside the
// teaching range, are dropped with a warning; one bad segment never blanks the
// rest of a course's schedule. An empty descriptor yields an empty slice.
func ParseDescriptor(d models.ScheduleDescriptor) []Interval {
	if len(d.Records) > 0 {
		return fromRecords(d.Records)
	}
	return fromText(d.Text)
}

func fromRecords(records []models.ScheduleRecord) []Interval {
	intervals := make([]Interval, 0, len(records))
	for _, r := range records {
		day, ok := dayNames[strings.TrimSpace(r.Day)]
		if !ok {
			logs.Warn("schedule: unknown day %q in structured descriptor, segment dropped", r.Day)
			continue
		}
		iv := Interval{Day: day, StartHour: r.StartHour, EndHour: r.EndHour}
		if !validInterval(iv) {
			logs.Warn("schedule: interval %s %d-%d outside teaching hours, segment dropped", r.Day, r.StartHour, r.EndHour)
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals
}

func fromText(text string) []Interval {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	segments := strings.Split(trimmed, ",")
	intervals := make([]Interval, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		m := segmentPattern.FindStringSubmatch(segment)
		if m == nil {
			logs.Warn("schedule: unparseable segment %q dropped", segment)
			continue
		}
		day := dayNames[m[1]]
		start, _ := strconv.Atoi(m[2])
		end, _ := strconv.Atoi(m[4])
		iv := Interval{Day: day, StartHour: start, EndHour: end}
		if !validInterval(iv) {
			logs.Warn("schedule: segment %q outside teaching hours dropped", segment)
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals
}

func validInterval(iv Interval) bool {
	if iv.Day < Monday || iv.Day > Friday {
		return false
	}
	if iv.StartHour >= iv.EndHour {
		return false
	}
	return iv.StartHour >= FirstHour && iv.EndHour <= LastHour
}
