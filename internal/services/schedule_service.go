package services

import (
	"net/http"

	webcontext "github.com/beego/beego/v2/server/web/context"

	"github.com/yeongbeomSong/CourseEnroll/helpers"
	internaldto "github.com/yeongbeomSong/CourseEnroll/internal/dto"
	"github.com/yeongbeomSong/CourseEnroll/internal/schedule"
)

// WeeklySchedule projects the caller's memberships onto the fixed teaching
// grid. Memberships are placed in the order the registry delivers them, which
// gives the earliest-enrolled course any contested hour.
func WeeklySchedule(webctx *webcontext.Context) (internaldto.WeeklyGridDTO, error) {
	session, err := studentSession(webctx)
	if err != nil {
		return internaldto.WeeklyGridDTO{}, err
	}
	records, err := session.Memberships.Get(requestContext(webctx))
	if err != nil {
		return internaldto.WeeklyGridDTO{}, helpers.NewAppError(http.StatusBadGateway, "could not load enrollments", err)
	}

	entries := make([]schedule.Entry, 0, len(records))
	totalCredits := 0
	for _, r := range records {
		totalCredits += r.Credit
		occ := schedule.Occupant{
			CourseId:       r.CourseId,
			RegistrationId: r.RegistrationId,
			Title:          r.Title,
		}
		for _, iv := range schedule.ParseDescriptor(r.Schedule) {
			entries = append(entries, schedule.Entry{Occupant: occ, Interval: iv})
		}
	}

	return gridDTO(schedule.BuildGrid(entries), totalCredits), nil
}

func gridDTO(grid *schedule.Grid, totalCredits int) internaldto.WeeklyGridDTO {
	days := make([]string, schedule.DaysPerWeek)
	copy(days, schedule.DayLabels[:])

	hours := make([]int, 0, schedule.HoursPerDay)
	for h := schedule.FirstHour; h < schedule.LastHour; h++ {
		hours = append(hours, h)
	}

	cells := make([][]*internaldto.GridCellDTO, schedule.DaysPerWeek)
	for d := 0; d < schedule.DaysPerWeek; d++ {
		row := make([]*internaldto.GridCellDTO, schedule.HoursPerDay)
		for i, h := range hours {
			if occ := grid.At(schedule.Day(d), h); occ != nil {
				row[i] = &internaldto.GridCellDTO{
					CourseId:       occ.CourseId,
					RegistrationId: occ.RegistrationId,
					Title:          occ.Title,
				}
			}
		}
		cells[d] = row
	}

	return internaldto.WeeklyGridDTO{
		Days:         days,
		Hours:        hours,
		Cells:        cells,
		TotalCredits: totalCredits,
	}
}
