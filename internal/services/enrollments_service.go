package services

import (
	"errors"
	"net/http"

	webcontext "github.com/beego/beego/v2/server/web/context"

	"github.com/yeongbeomSong/CourseEnroll/helpers"
	internaldto "github.com/yeongbeomSong/CourseEnroll/internal/dto"
	"github.com/yeongbeomSong/CourseEnroll/internal/enrollment"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
	"github.com/yeongbeomSong/CourseEnroll/models"
)

// MyEnrollments lists the caller's confirmed memberships in the order the
// registry reports them.
func MyEnrollments(webctx *webcontext.Context) ([]internaldto.EnrollmentDTO, error) {
	session, err := studentSession(webctx)
	if err != nil {
		return nil, err
	}
	records, err := session.Memberships.Get(requestContext(webctx))
	if err != nil {
		return nil, helpers.NewAppError(http.StatusBadGateway, "could not load enrollments", err)
	}

	out := make([]internaldto.EnrollmentDTO, 0, len(records))
	for _, r := range records {
		out = append(out, enrollmentDTO(r))
	}
	return out, nil
}

// WaitingPositions lists the caller's queue positions.
func WaitingPositions(webctx *webcontext.Context) ([]internaldto.WaitlistEntryDTO, error) {
	session, err := studentSession(webctx)
	if err != nil {
		return nil, err
	}
	entries, err := session.Waitlist.Get(requestContext(webctx))
	if err != nil {
		return nil, helpers.NewAppError(http.StatusBadGateway, "could not load waitlist positions", err)
	}

	out := make([]internaldto.WaitlistEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, internaldto.WaitlistEntryDTO{CourseId: e.CourseId, Position: e.Position})
	}
	return out, nil
}

// Apply asks the registry for a seat in the course; a full course yields a
// waitlist slot instead. Either outcome invalidates the affected snapshots.
func Apply(webctx *webcontext.Context, courseID int64) (internaldto.EnrollOutcomeDTO, error) {
	coordinator, err := sessionCoordinator(webctx)
	if err != nil {
		return internaldto.EnrollOutcomeDTO{}, err
	}

	outcome, err := coordinator.Apply(requestContext(webctx), courseID)
	if err != nil {
		return internaldto.EnrollOutcomeDTO{}, mutationAppError(err)
	}

	dto := internaldto.EnrollOutcomeDTO{
		Enrolled:        outcome.Enrolled,
		InWaitlist:      outcome.InWaitlist,
		WaitingPosition: outcome.WaitingPosition,
	}
	if outcome.Enrollment != nil {
		e := enrollmentDTO(*outcome.Enrollment)
		dto.Enrollment = &e
	}
	return dto, nil
}

// Cancel revokes the caller's enrollment in a course.
func Cancel(webctx *webcontext.Context, courseID int64) error {
	coordinator, err := sessionCoordinator(webctx)
	if err != nil {
		return err
	}
	if err := coordinator.Cancel(requestContext(webctx), courseID); err != nil {
		return mutationAppError(err)
	}
	return nil
}

// LeaveWaiting abandons the caller's queue slot for a course.
func LeaveWaiting(webctx *webcontext.Context, courseID int64) error {
	coordinator, err := sessionCoordinator(webctx)
	if err != nil {
		return err
	}
	if err := coordinator.LeaveWaitlist(requestContext(webctx), courseID); err != nil {
		return mutationAppError(err)
	}
	return nil
}

func sessionCoordinator(webctx *webcontext.Context) (*enrollment.Coordinator, error) {
	session, err := studentSession(webctx)
	if err != nil {
		return nil, err
	}
	actions := registryActions{headers: internalhelpers.OutboundHeaders(webctx)}
	return enrollment.NewCoordinator(actions, session), nil
}

func mutationAppError(err error) *helpers.AppError {
	var me *enrollment.MutationError
	if errors.As(err, &me) {
		return helpers.NewAppError(me.Status, me.Message, err)
	}
	return helpers.NewAppError(http.StatusBadGateway, "enrollment operation failed", err)
}

func enrollmentDTO(r models.MembershipRecord) internaldto.EnrollmentDTO {
	return internaldto.EnrollmentDTO{
		RegistrationId: r.RegistrationId,
		CourseId:       r.CourseId,
		CourseCode:     r.CourseCode,
		Title:          r.Title,
		Category:       string(r.Category),
		Credit:         r.Credit,
		Schedule:       r.Schedule.Display(),
		ProfessorName:  r.ProfessorName,
		EnrolledAt:     r.EnrolledAt,
	}
}
