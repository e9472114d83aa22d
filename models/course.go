package models

// Category is the credit classification of a course.
type Category string

const (
	CategoryMajorRequired Category = "MAJOR_REQUIRED"
	CategoryMajorSelect   Category = "MAJOR_SELECT"
	CategoryGeneral       Category = "GENERAL"
)

// Department as exposed by the registry.
type Department struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// Course is one catalog entry. Capacity and CurrentEnrollment are authoritative
// only as of the last catalog fetch; CurrentEnrollment may legitimately exceed
// Capacity in a stale snapshot.
type Course struct {
	Id                int64              `json:"id"`
	CourseCode        string             `json:"courseCode"`
	Title             string             `json:"title"`
	DepartmentId      int64              `json:"departmentId"`
	DepartmentName    string             `json:"departmentName"`
	ProfessorId       int64              `json:"professorId"`
	ProfessorName     string             `json:"professorName"`
	Category          Category           `json:"category"`
	Credit            int                `json:"credit"`
	Capacity          int                `json:"capacity"`
	CurrentEnrollment int                `json:"currentEnrollment"`
	TargetGrade       int                `json:"targetGrade"`
	Schedule          ScheduleDescriptor `json:"schedule"`
}

// RemainingSeats is the seat count derived from the last catalog snapshot,
// clamped so an over-enrolled stale snapshot never displays negative seats.
func (c Course) RemainingSeats() int {
	remaining := c.Capacity - c.CurrentEnrollment
	if remaining < 0 {
		return 0
	}
	return remaining
}
