package controllers

import (
	"net/http"
	"strings"

	rootcontrollers "github.com/yeongbeomSong/CourseEnroll/controllers"
	"github.com/yeongbeomSong/CourseEnroll/helpers"
	internaldto "github.com/yeongbeomSong/CourseEnroll/internal/dto"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
	internalservices "github.com/yeongbeomSong/CourseEnroll/internal/services"
)

// AdminController serves the administration console endpoints.
type AdminController struct {
	rootcontrollers.BaseController
}

// GetDepartments lists departments.
func (c *AdminController) GetDepartments() {
	result, err := internalservices.AdminListDepartments(c.Ctx)
	if err != nil {
		resp := c.buildError(err, "error listing departments")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// PostDepartment creates a department.
func (c *AdminController) PostDepartment() {
	var body map[string]interface{}
	if err := c.ParseJSONBody(&body); err != nil || len(body) == 0 {
		resp := internalhelpers.Fail(http.StatusBadRequest, "department data required")
		c.writeJSON(resp.Status, resp)
		return
	}

	result, err := internalservices.AdminCreateDepartment(c.Ctx, body)
	if err != nil {
		resp := c.buildError(err, "error creating department")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// PutDepartment updates a department.
func (c *AdminController) PutDepartment() {
	departmentID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "invalid department id")
		c.writeJSON(resp.Status, resp)
		return
	}

	var body map[string]interface{}
	if err := c.ParseJSONBody(&body); err != nil || len(body) == 0 {
		resp := internalhelpers.Fail(http.StatusBadRequest, "department data required")
		c.writeJSON(resp.Status, resp)
		return
	}

	result, err := internalservices.AdminUpdateDepartment(c.Ctx, departmentID, body)
	if err != nil {
		resp := c.buildError(err, "error updating department")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// DeleteDepartment deletes a department.
func (c *AdminController) DeleteDepartment() {
	departmentID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "invalid department id")
		c.writeJSON(resp.Status, resp)
		return
	}

	if err := internalservices.AdminDeleteDepartment(c.Ctx, departmentID); err != nil {
		resp := c.buildError(err, "error deleting department")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(map[string]interface{}{"id": departmentID, "deleted": true})
	c.writeJSON(resp.Status, resp)
}

// GetUsers lists accounts, forwarding pagination and role filters.
func (c *AdminController) GetUsers() {
	query := map[string]string{
		"page": strings.TrimSpace(c.GetString("page")),
		"size": strings.TrimSpace(c.GetString("size")),
		"role": strings.TrimSpace(c.GetString("role")),
		"q":    strings.TrimSpace(c.GetString("q")),
	}

	result, err := internalservices.AdminListUsers(c.Ctx, query)
	if err != nil {
		resp := c.buildError(err, "error listing users")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// DeleteUser removes an account.
func (c *AdminController) DeleteUser() {
	userID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "invalid user id")
		c.writeJSON(resp.Status, resp)
		return
	}

	if err := internalservices.AdminDeleteUser(c.Ctx, userID); err != nil {
		resp := c.buildError(err, "error deleting user")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(map[string]interface{}{"id": userID, "deleted": true})
	c.writeJSON(resp.Status, resp)
}

// GetCourses lists the full catalog with enrollment counts.
func (c *AdminController) GetCourses() {
	result, err := internalservices.AdminListCourses(c.Ctx)
	if err != nil {
		resp := c.buildError(err, "error listing courses")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

func (c *AdminController) buildError(err error, fallback string) internaldto.APIResponseDTO {
	appErr := helpers.AsAppError(err, fallback)
	return internalhelpers.Fail(appErr.Status, appErr.Message)
}

func (c *AdminController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
