package dto

// CourseCardDTO is the catalog entry as the frontend renders it: catalog data
// plus the caller-specific status derived from the cached snapshots.
type CourseCardDTO struct {
	Id                int64  `json:"id"`
	CourseCode        string `json:"courseCode"`
	Title             string `json:"title"`
	DepartmentId      int64  `json:"departmentId"`
	DepartmentName    string `json:"departmentName"`
	ProfessorId       int64  `json:"professorId"`
	ProfessorName     string `json:"professorName"`
	Category          string `json:"category"`
	Credit            int    `json:"credit"`
	Capacity          int    `json:"capacity"`
	CurrentEnrollment int    `json:"currentEnrollment"`
	RemainingSeats    int    `json:"remainingSeats"`
	TargetGrade       int    `json:"targetGrade"`
	Schedule          string `json:"schedule"`
	Status            string `json:"status"`
	WaitingPosition   int    `json:"waitingPosition,omitempty"`
	RegistrationId    int64  `json:"registrationId,omitempty"`
}

// EnrollmentDTO is one confirmed membership of the caller.
type EnrollmentDTO struct {
	RegistrationId int64  `json:"registrationId"`
	CourseId       int64  `json:"courseId"`
	CourseCode     string `json:"courseCode"`
	Title          string `json:"title"`
	Category       string `json:"category"`
	Credit         int    `json:"credit"`
	Schedule       string `json:"schedule"`
	ProfessorName  string `json:"professorName"`
	EnrolledAt     string `json:"enrolledAt,omitempty"`
}

// WaitlistEntryDTO is one of the caller's queue positions.
type WaitlistEntryDTO struct {
	CourseId int64 `json:"courseId"`
	Position int   `json:"position"`
}

// EnrollOutcomeDTO reports how an apply call settled: a seat, or a queue slot
// with its assigned position.
type EnrollOutcomeDTO struct {
	Enrolled        bool           `json:"enrolled"`
	InWaitlist      bool           `json:"inWaitlist"`
	WaitingPosition int            `json:"waitingPosition,omitempty"`
	Enrollment      *EnrollmentDTO `json:"enrollment,omitempty"`
}

// GridCellDTO identifies the course occupying one hour of the weekly grid.
type GridCellDTO struct {
	CourseId       int64  `json:"courseId"`
	RegistrationId int64  `json:"registrationId"`
	Title          string `json:"title"`
}

// WeeklyGridDTO is the rendered week: Cells[day][hour-index] is nil when free.
type WeeklyGridDTO struct {
	Days         []string         `json:"days"`
	Hours        []int            `json:"hours"`
	Cells        [][]*GridCellDTO `json:"cells"`
	TotalCredits int              `json:"totalCredits"`
}
