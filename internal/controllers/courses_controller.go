// Package controllers exposes the /v1 HTTP surface consumed by the enrollment
// frontend. Controllers validate input, delegate to internal/services and wrap
// results in the standard response envelope.
package controllers

import (
	"net/http"
	"strconv"
	"strings"

	rootcontrollers "github.com/yeongbeomSong/CourseEnroll/controllers"
	"github.com/yeongbeomSong/CourseEnroll/helpers"
	internaldto "github.com/yeongbeomSong/CourseEnroll/internal/dto"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
	internalservices "github.com/yeongbeomSong/CourseEnroll/internal/services"
)

// CoursesController serves the annotated course catalog.
type CoursesController struct {
	rootcontrollers.BaseController
}

// GetList lists the catalog with the caller's per-course status, optionally
// filtered by department, category or keyword.
func (c *CoursesController) GetList() {
	filter := internalservices.CourseFilter{
		Category: strings.TrimSpace(c.GetString("category")),
		Keyword:  strings.TrimSpace(c.GetString("q")),
	}
	if raw := strings.TrimSpace(c.GetString("departmentId")); raw != "" {
		departmentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || departmentID <= 0 {
			resp := internalhelpers.Fail(http.StatusBadRequest, "invalid departmentId")
			c.writeJSON(resp.Status, resp)
			return
		}
		filter.DepartmentID = departmentID
	}

	result, err := internalservices.ListCourses(c.Ctx, filter)
	if err != nil {
		resp := c.buildError(err, "error listing courses")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// GetById returns one annotated catalog entry.
func (c *CoursesController) GetById() {
	courseID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "invalid course id")
		c.writeJSON(resp.Status, resp)
		return
	}

	result, err := internalservices.GetCourse(c.Ctx, courseID)
	if err != nil {
		resp := c.buildError(err, "error loading course")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

func (c *CoursesController) buildError(err error, fallback string) internaldto.APIResponseDTO {
	appErr := helpers.AsAppError(err, fallback)
	return internalhelpers.Fail(appErr.Status, appErr.Message)
}

func (c *CoursesController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
