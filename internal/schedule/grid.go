package schedule

// DaysPerWeek is the width of the teaching grid.
const DaysPerWeek = 5

// HoursPerDay is the number of startable hours (9..20).
const HoursPerDay = LastHour - FirstHour

// Occupant identifies the course shown in a grid cell.
type Occupant struct {
	CourseId       int64
	RegistrationId int64
	Title          string
}

// Entry pairs an occupant with one of its meeting intervals.
type Entry struct {
	Occupant Occupant
	Interval Interval
}

// Grid is a fixed week view. Cells are nil when free. A grid is built fresh on
// every projection and never mutated afterwards.
type Grid struct {
	cells [DaysPerWeek][HoursPerDay]*Occupant
}

// BuildGrid places entries in order with a first-writer-wins overlap policy:
// the earliest-enrolled course keeps a contested hour and later claimants are
// silently hidden for that cell only. Overlaps are a display concern here, not
// an error; the registry does not reject overlapping enrollments.
func BuildGrid(entries []Entry) *Grid {
	g := &Grid{}
	for i := range entries {
		iv := entries[i].Interval
		if !validInterval(iv) {
			continue
		}
		occ := entries[i].Occupant
		for h := iv.StartHour; h < iv.EndHour; h++ {
			row := h - FirstHour
			if g.cells[iv.Day][row] == nil {
				o := occ
				g.cells[iv.Day][row] = &o
			}
		}
	}
	return g
}

// At returns the occupant of (day, hour) or nil. Hours outside the teaching
// range are always free.
func (g *Grid) At(day Day, hour int) *Occupant {
	if day < Monday || day > Friday {
		return nil
	}
	if hour < FirstHour || hour >= LastHour {
		return nil
	}
	return g.cells[day][hour-FirstHour]
}
