package services

import (
	"net/http"
	"strings"

	webcontext "github.com/beego/beego/v2/server/web/context"

	"github.com/yeongbeomSong/CourseEnroll/helpers"
	internaldto "github.com/yeongbeomSong/CourseEnroll/internal/dto"
	"github.com/yeongbeomSong/CourseEnroll/internal/enrollment"
	"github.com/yeongbeomSong/CourseEnroll/models"
)

// CourseFilter narrows the catalog listing. Zero values mean "all".
type CourseFilter struct {
	DepartmentID int64
	Category     string
	Keyword      string
}

// ListCourses returns the catalog annotated with the caller's per-course
// status. The three snapshots are read independently; each may be staler than
// the others and the resolver reconciles them.
func ListCourses(webctx *webcontext.Context, filter CourseFilter) ([]internaldto.CourseCardDTO, error) {
	session, err := studentSession(webctx)
	if err != nil {
		return nil, err
	}
	ctx := requestContext(webctx)

	courses, err := CacheManager().Catalog().Get(ctx)
	if err != nil {
		return nil, helpers.NewAppError(http.StatusBadGateway, "could not load course catalog", err)
	}
	memberships, waitlist, err := sessionSnapshots(ctx, session)
	if err != nil {
		return nil, err
	}

	cards := make([]internaldto.CourseCardDTO, 0, len(courses))
	for _, course := range courses {
		if !matchesFilter(course, filter) {
			continue
		}
		cards = append(cards, courseCard(course, enrollment.ResolveStatus(course, memberships, waitlist)))
	}
	return cards, nil
}

// GetCourse returns one annotated catalog entry.
func GetCourse(webctx *webcontext.Context, courseID int64) (internaldto.CourseCardDTO, error) {
	session, err := studentSession(webctx)
	if err != nil {
		return internaldto.CourseCardDTO{}, err
	}
	ctx := requestContext(webctx)

	courses, err := CacheManager().Catalog().Get(ctx)
	if err != nil {
		return internaldto.CourseCardDTO{}, helpers.NewAppError(http.StatusBadGateway, "could not load course catalog", err)
	}
	memberships, waitlist, err := sessionSnapshots(ctx, session)
	if err != nil {
		return internaldto.CourseCardDTO{}, err
	}

	for _, course := range courses {
		if course.Id == courseID {
			return courseCard(course, enrollment.ResolveStatus(course, memberships, waitlist)), nil
		}
	}
	return internaldto.CourseCardDTO{}, helpers.NewAppError(http.StatusNotFound, "course not found", nil)
}

func matchesFilter(course models.Course, filter CourseFilter) bool {
	if filter.DepartmentID > 0 && course.DepartmentId != filter.DepartmentID {
		return false
	}
	if filter.Category != "" && !strings.EqualFold(string(course.Category), filter.Category) {
		return false
	}
	if filter.Keyword != "" {
		needle := strings.ToLower(filter.Keyword)
		if !strings.Contains(strings.ToLower(course.Title), needle) &&
			!strings.Contains(strings.ToLower(course.CourseCode), needle) &&
			!strings.Contains(strings.ToLower(course.ProfessorName), needle) {
			return false
		}
	}
	return true
}

func courseCard(course models.Course, status enrollment.CourseStatus) internaldto.CourseCardDTO {
	return internaldto.CourseCardDTO{
		Id:                course.Id,
		CourseCode:        course.CourseCode,
		Title:             course.Title,
		DepartmentId:      course.DepartmentId,
		DepartmentName:    course.DepartmentName,
		ProfessorId:       course.ProfessorId,
		ProfessorName:     course.ProfessorName,
		Category:          string(course.Category),
		Credit:            course.Credit,
		Capacity:          course.Capacity,
		CurrentEnrollment: course.CurrentEnrollment,
		RemainingSeats:    status.RemainingSeats,
		TargetGrade:       course.TargetGrade,
		Schedule:          course.Schedule.Display(),
		Status:            string(status.Kind),
		WaitingPosition:   status.WaitingPosition,
		RegistrationId:    status.RegistrationId,
	}
}
