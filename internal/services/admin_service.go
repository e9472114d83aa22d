package services

import (
	"net/http"

	webcontext "github.com/beego/beego/v2/server/web/context"

	"github.com/yeongbeomSong/CourseEnroll/helpers"
	"github.com/yeongbeomSong/CourseEnroll/internal/clients"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
	"github.com/yeongbeomSong/CourseEnroll/models"
)

func requireAdmin(webctx *webcontext.Context) error {
	if err := internalhelpers.RequireRole(webctx, internalhelpers.RoleAdmin); err != nil {
		return helpers.NewAppError(http.StatusForbidden, "admin role required", err)
	}
	return nil
}

// AdminListDepartments lists departments for the admin console.
func AdminListDepartments(webctx *webcontext.Context) ([]models.Department, error) {
	if err := requireAdmin(webctx); err != nil {
		return nil, err
	}
	departments, err := clients.Registry().AdminListDepartments(requestContext(webctx), internalhelpers.OutboundHeaders(webctx))
	if err != nil {
		return nil, remoteError(err, "could not load departments")
	}
	if departments == nil {
		departments = []models.Department{}
	}
	return departments, nil
}

// AdminCreateDepartment creates a department.
func AdminCreateDepartment(webctx *webcontext.Context, body map[string]interface{}) (map[string]interface{}, error) {
	if err := requireAdmin(webctx); err != nil {
		return nil, err
	}
	out, err := clients.Registry().AdminCreateDepartment(requestContext(webctx), internalhelpers.OutboundHeaders(webctx), body)
	if err != nil {
		return nil, remoteError(err, "could not create department")
	}
	return out, nil
}

// AdminUpdateDepartment updates a department.
func AdminUpdateDepartment(webctx *webcontext.Context, departmentID int64, body map[string]interface{}) (map[string]interface{}, error) {
	if err := requireAdmin(webctx); err != nil {
		return nil, err
	}
	out, err := clients.Registry().AdminUpdateDepartment(requestContext(webctx), internalhelpers.OutboundHeaders(webctx), departmentID, body)
	if err != nil {
		return nil, remoteError(err, "could not update department")
	}
	return out, nil
}

// AdminDeleteDepartment deletes a department.
func AdminDeleteDepartment(webctx *webcontext.Context, departmentID int64) error {
	if err := requireAdmin(webctx); err != nil {
		return err
	}
	if err := clients.Registry().AdminDeleteDepartment(requestContext(webctx), internalhelpers.OutboundHeaders(webctx), departmentID); err != nil {
		return remoteError(err, "could not delete department")
	}
	return nil
}

// AdminListUsers lists accounts, forwarding pagination and role filters.
func AdminListUsers(webctx *webcontext.Context, query map[string]string) (map[string]interface{}, error) {
	if err := requireAdmin(webctx); err != nil {
		return nil, err
	}
	out, err := clients.Registry().AdminListUsers(requestContext(webctx), internalhelpers.OutboundHeaders(webctx), query)
	if err != nil {
		return nil, remoteError(err, "could not load users")
	}
	return out, nil
}

// AdminDeleteUser removes an account.
func AdminDeleteUser(webctx *webcontext.Context, userID int64) error {
	if err := requireAdmin(webctx); err != nil {
		return err
	}
	if err := clients.Registry().AdminDeleteUser(requestContext(webctx), internalhelpers.OutboundHeaders(webctx), userID); err != nil {
		return remoteError(err, "could not delete user")
	}
	return nil
}

// AdminListCourses lists the full catalog with enrollment counts for monitoring.
func AdminListCourses(webctx *webcontext.Context) ([]models.Course, error) {
	if err := requireAdmin(webctx); err != nil {
		return nil, err
	}
	courses, err := clients.Registry().AdminListCourses(requestContext(webctx), internalhelpers.OutboundHeaders(webctx))
	if err != nil {
		return nil, remoteError(err, "could not load courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}
