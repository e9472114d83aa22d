package controllers

import (
	"net/http"

	rootcontrollers "github.com/yeongbeomSong/CourseEnroll/controllers"
	"github.com/yeongbeomSong/CourseEnroll/helpers"
	internaldto "github.com/yeongbeomSong/CourseEnroll/internal/dto"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
	internalservices "github.com/yeongbeomSong/CourseEnroll/internal/services"
)

// ProfessorController serves course management for professors.
type ProfessorController struct {
	rootcontrollers.BaseController
}

// GetCourses lists the calling professor's courses.
func (c *ProfessorController) GetCourses() {
	result, err := internalservices.ProfessorCourses(c.Ctx)
	if err != nil {
		resp := c.buildError(err, "error listing your courses")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// PostCourse creates a course.
func (c *ProfessorController) PostCourse() {
	var body map[string]interface{}
	if err := c.ParseJSONBody(&body); err != nil || len(body) == 0 {
		resp := internalhelpers.Fail(http.StatusBadRequest, "course data required")
		c.writeJSON(resp.Status, resp)
		return
	}

	result, err := internalservices.CreateCourse(c.Ctx, body)
	if err != nil {
		resp := c.buildError(err, "error creating course")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// GetCourse fetches one of the calling professor's courses.
func (c *ProfessorController) GetCourse() {
	courseID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "invalid course id")
		c.writeJSON(resp.Status, resp)
		return
	}

	result, err := internalservices.GetProfessorCourse(c.Ctx, courseID)
	if err != nil {
		resp := c.buildError(err, "error loading course")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// PutCourse updates one of the calling professor's courses.
func (c *ProfessorController) PutCourse() {
	courseID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "invalid course id")
		c.writeJSON(resp.Status, resp)
		return
	}

	var body map[string]interface{}
	if err := c.ParseJSONBody(&body); err != nil || len(body) == 0 {
		resp := internalhelpers.Fail(http.StatusBadRequest, "course data required")
		c.writeJSON(resp.Status, resp)
		return
	}

	result, err := internalservices.UpdateCourse(c.Ctx, courseID, body)
	if err != nil {
		resp := c.buildError(err, "error updating course")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// GetStudents lists the students enrolled in one of the professor's courses.
func (c *ProfessorController) GetStudents() {
	courseID, err := internalhelpers.ParamInt64(c.Ctx, ":id")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "invalid course id")
		c.writeJSON(resp.Status, resp)
		return
	}

	result, err := internalservices.CourseStudents(c.Ctx, courseID)
	if err != nil {
		resp := c.buildError(err, "error listing enrolled students")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

func (c *ProfessorController) buildError(err error, fallback string) internaldto.APIResponseDTO {
	appErr := helpers.AsAppError(err, fallback)
	return internalhelpers.Fail(appErr.Status, appErr.Message)
}

func (c *ProfessorController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
