package enrollment

import (
	"context"
	"errors"
	"net/http"

	"github.com/yeongbeomSong/CourseEnroll/helpers"
	"github.com/yeongbeomSong/CourseEnroll/models"
)

// RemoteActions is the mutation surface of the registration registry. The
// registry is the source of truth for seat allocation and waitlist promotion;
// this client only executes and then declares what it no longer trusts.
type RemoteActions interface {
	Apply(ctx context.Context, courseID int64) (models.EnrollResult, error)
	Cancel(ctx context.Context, courseID int64) error
	LeaveWaitlist(ctx context.Context, courseID int64) error
}

// ResourceSet is the invalidation surface of the caches affected by mutations.
type ResourceSet interface {
	InvalidateCatalog()
	InvalidateMemberships()
	InvalidateWaitlist()
}

// MutationError is a failed apply/cancel/leave action. Message carries the
// registry-supplied explanation when one was provided. A failed mutation has
// no cache side effects.
type MutationError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *MutationError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// ApplyOutcome reports how the registry settled an apply call.
type ApplyOutcome struct {
	Enrolled        bool
	InWaitlist      bool
	WaitingPosition int
	Enrollment      *models.MembershipRecord
}

// Coordinator executes mutations and invalidates exactly the snapshots each
// operation can have changed.
type Coordinator struct {
	remote    RemoteActions
	resources ResourceSet
}

// NewCoordinator wires the remote boundary to a cache session.
func NewCoordinator(remote RemoteActions, resources ResourceSet) *Coordinator {
	return &Coordinator{remote: remote, resources: resources}
}

// Apply calls the registry's single enroll-or-waitlist endpoint. Because the
// outcome is ambiguous until refetched (a seat or a queue slot), success
// invalidates all three snapshots. A waitlist placement is reported with its
// assigned position so the UI can notify the student.
func (c *Coordinator) Apply(ctx context.Context, courseID int64) (ApplyOutcome, error) {
	result, err := c.remote.Apply(ctx, courseID)
	if err != nil {
		return ApplyOutcome{}, newMutationError("apply", "enrollment request failed", err)
	}

	c.resources.InvalidateCatalog()
	c.resources.InvalidateMemberships()
	c.resources.InvalidateWaitlist()

	return ApplyOutcome{
		Enrolled:        !result.InWaitlist,
		InWaitlist:      result.InWaitlist,
		WaitingPosition: result.WaitingPosition,
		Enrollment:      result.Enrollment,
	}, nil
}

// Cancel revokes an enrollment. A cancellation frees a seat (and may promote
// another student server-side), so the catalog and the caller's memberships
// are invalidated; the caller's own waitlist positions are untouched.
func (c *Coordinator) Cancel(ctx context.Context, courseID int64) error {
	if err := c.remote.Cancel(ctx, courseID); err != nil {
		return newMutationError("cancel", "cancellation failed", err)
	}
	c.resources.InvalidateCatalog()
	c.resources.InvalidateMemberships()
	return nil
}

// LeaveWaitlist abandons the caller's queue slot, invalidating the waitlist
// and the catalog.
func (c *Coordinator) LeaveWaitlist(ctx context.Context, courseID int64) error {
	if err := c.remote.LeaveWaitlist(ctx, courseID); err != nil {
		return newMutationError("leave-waitlist", "leaving the waitlist failed", err)
	}
	c.resources.InvalidateWaitlist()
	c.resources.InvalidateCatalog()
	return nil
}

func newMutationError(op, fallback string, err error) *MutationError {
	status := http.StatusBadGateway
	var he *helpers.HTTPError
	if errors.As(err, &he) {
		status = he.Status
	}
	message := helpers.RemoteMessage(err)
	if message == "" {
		message = fallback
	}
	return &MutationError{Op: op, Status: status, Message: message, Err: err}
}
