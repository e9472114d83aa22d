package models

// MembershipRecord is one confirmed enrollment of the calling student. The
// RegistrationId is required for cancellation.
type MembershipRecord struct {
	RegistrationId int64              `json:"registrationId"`
	CourseId       int64              `json:"courseId"`
	CourseCode     string             `json:"courseCode"`
	Title          string             `json:"title"`
	Category       Category           `json:"category"`
	Credit         int                `json:"credit"`
	Schedule       ScheduleDescriptor `json:"schedule"`
	ProfessorName  string             `json:"professorName"`
	EnrolledAt     string             `json:"enrolledAt"`
}

// WaitlistEntry pairs a course with the student's 1-based queue position.
// Position 0 means not waitlisted; positions come from the registry only.
type WaitlistEntry struct {
	CourseId int64 `json:"courseId"`
	Position int   `json:"position"`
}

// EnrollResult is the registry's answer to an apply call: either an immediate
// enrollment or a waitlist placement.
type EnrollResult struct {
	Enrollment      *MembershipRecord `json:"enrollment,omitempty"`
	InWaitlist      bool              `json:"inWaitlist"`
	WaitingPosition int               `json:"waitingPosition,omitempty"`
}
