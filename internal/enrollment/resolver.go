// Package enrollment reconciles the three independently-stale snapshots
// (catalog, memberships, waitlist positions) into one authoritative per-course
// status, and coordinates mutations against the registration registry.
package enrollment

import (
	"fmt"

	"github.com/yeongbeomSong/CourseEnroll/models"
)

// StatusKind is the derived display state of a course for the calling student.
type StatusKind string

const (
	StatusAvailable  StatusKind = "AVAILABLE"
	StatusFull       StatusKind = "FULL"
	StatusEnrolled   StatusKind = "ENROLLED"
	StatusWaitlisted StatusKind = "WAITLISTED"
)

// CourseStatus is computed on demand and never stored. Exactly one kind
// applies per course per resolution.
type CourseStatus struct {
	Kind            StatusKind
	RemainingSeats  int
	WaitingPosition int   // set only when Kind == StatusWaitlisted
	RegistrationId  int64 // set only when Kind == StatusEnrolled
}

// MembershipSet indexes the caller's enrollments by course, keeping the
// registration id needed for cancellation.
type MembershipSet map[int64]int64

// NewMembershipSet builds the set, rejecting duplicate courseIds: a caller is
// enrolled in a course or not, and a duplicated membership is corrupt input
// rather than a valid state.
func NewMembershipSet(records []models.MembershipRecord) (MembershipSet, error) {
	set := make(MembershipSet, len(records))
	for _, r := range records {
		if _, exists := set[r.CourseId]; exists {
			return nil, fmt.Errorf("duplicate membership for course %d", r.CourseId)
		}
		set[r.CourseId] = r.RegistrationId
	}
	return set, nil
}

// WaitlistIndex maps courseId to the caller's 1-based queue position.
type WaitlistIndex map[int64]int

// NewWaitlistIndex indexes waitlist entries, ignoring non-positive positions
// (position 0 means "not waitlisted").
func NewWaitlistIndex(entries []models.WaitlistEntry) WaitlistIndex {
	index := make(WaitlistIndex, len(entries))
	for _, e := range entries {
		if e.Position > 0 {
			index[e.CourseId] = e.Position
		}
	}
	return index
}

// ResolveStatus derives the display status of one course from the last-known
// snapshots. Pure and deterministic; it tolerates any combination of staleness
// across the three inputs. When a stale waitlist entry coexists with a
// membership, the membership wins: it is backed by a committed registration id.
func ResolveStatus(course models.Course, memberships MembershipSet, waitlist WaitlistIndex) CourseStatus {
	remaining := course.RemainingSeats()

	if registrationID, ok := memberships[course.Id]; ok {
		return CourseStatus{
			Kind:           StatusEnrolled,
			RemainingSeats: remaining,
			RegistrationId: registrationID,
		}
	}
	if position, ok := waitlist[course.Id]; ok {
		return CourseStatus{
			Kind:            StatusWaitlisted,
			RemainingSeats:  remaining,
			WaitingPosition: position,
		}
	}
	if remaining > 0 {
		return CourseStatus{Kind: StatusAvailable, RemainingSeats: remaining}
	}
	return CourseStatus{Kind: StatusFull}
}
