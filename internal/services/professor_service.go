package services

import (
	"net/http"

	webcontext "github.com/beego/beego/v2/server/web/context"

	"github.com/yeongbeomSong/CourseEnroll/helpers"
	"github.com/yeongbeomSong/CourseEnroll/internal/clients"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
	"github.com/yeongbeomSong/CourseEnroll/models"
)

func requireProfessor(webctx *webcontext.Context) error {
	if err := internalhelpers.RequireRole(webctx, internalhelpers.RoleProfessor); err != nil {
		return helpers.NewAppError(http.StatusForbidden, "professor role required", err)
	}
	return nil
}

// ProfessorCourses lists the courses owned by the calling professor.
func ProfessorCourses(webctx *webcontext.Context) ([]models.Course, error) {
	if err := requireProfessor(webctx); err != nil {
		return nil, err
	}
	courses, err := clients.Registry().ProfessorCourses(requestContext(webctx), internalhelpers.OutboundHeaders(webctx))
	if err != nil {
		return nil, remoteError(err, "could not load your courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// CreateCourse registers a new course for the calling professor. The catalog
// snapshot is invalidated so students see the new course on their next read.
func CreateCourse(webctx *webcontext.Context, body map[string]interface{}) (map[string]interface{}, error) {
	if err := requireProfessor(webctx); err != nil {
		return nil, err
	}
	out, err := clients.Registry().CreateCourse(requestContext(webctx), internalhelpers.OutboundHeaders(webctx), body)
	if err != nil {
		return nil, remoteError(err, "could not create course")
	}
	CacheManager().Catalog().Invalidate()
	return out, nil
}

// GetProfessorCourse fetches one of the calling professor's courses.
func GetProfessorCourse(webctx *webcontext.Context, courseID int64) (map[string]interface{}, error) {
	if err := requireProfessor(webctx); err != nil {
		return nil, err
	}
	out, err := clients.Registry().GetProfessorCourse(requestContext(webctx), internalhelpers.OutboundHeaders(webctx), courseID)
	if err != nil {
		return nil, remoteError(err, "could not load course")
	}
	return out, nil
}

// UpdateCourse updates one of the calling professor's courses and invalidates
// the shared catalog.
func UpdateCourse(webctx *webcontext.Context, courseID int64, body map[string]interface{}) (map[string]interface{}, error) {
	if err := requireProfessor(webctx); err != nil {
		return nil, err
	}
	out, err := clients.Registry().UpdateCourse(requestContext(webctx), internalhelpers.OutboundHeaders(webctx), courseID, body)
	if err != nil {
		return nil, remoteError(err, "could not update course")
	}
	CacheManager().Catalog().Invalidate()
	return out, nil
}

// CourseStudents lists the students enrolled in one of the professor's courses.
func CourseStudents(webctx *webcontext.Context, courseID int64) ([]map[string]interface{}, error) {
	if err := requireProfessor(webctx); err != nil {
		return nil, err
	}
	out, err := clients.Registry().CourseStudents(requestContext(webctx), internalhelpers.OutboundHeaders(webctx), courseID)
	if err != nil {
		return nil, remoteError(err, "could not load enrolled students")
	}
	if out == nil {
		out = []map[string]interface{}{}
	}
	return out, nil
}
