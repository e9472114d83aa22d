package controllers

import (
	"net/http"

	rootcontrollers "github.com/yeongbeomSong/CourseEnroll/controllers"
	"github.com/yeongbeomSong/CourseEnroll/helpers"
	internaldto "github.com/yeongbeomSong/CourseEnroll/internal/dto"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
	internalservices "github.com/yeongbeomSong/CourseEnroll/internal/services"
)

// EnrollmentsController serves the caller's enrollments and waitlist, and
// executes the three mutations.
type EnrollmentsController struct {
	rootcontrollers.BaseController
}

// GetMine lists the caller's confirmed enrollments.
func (c *EnrollmentsController) GetMine() {
	result, err := internalservices.MyEnrollments(c.Ctx)
	if err != nil {
		resp := c.buildError(err, "error listing enrollments")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// GetWaiting lists the caller's waitlist positions.
func (c *EnrollmentsController) GetWaiting() {
	result, err := internalservices.WaitingPositions(c.Ctx)
	if err != nil {
		resp := c.buildError(err, "error listing waitlist positions")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// PostApply requests a seat; a full course yields a waitlist slot instead.
func (c *EnrollmentsController) PostApply() {
	var body struct {
		CourseId int64 `json:"courseId"`
	}
	if err := c.ParseJSONBody(&body); err != nil || body.CourseId <= 0 {
		resp := internalhelpers.Fail(http.StatusBadRequest, "courseId required")
		c.writeJSON(resp.Status, resp)
		return
	}

	result, err := internalservices.Apply(c.Ctx, body.CourseId)
	if err != nil {
		resp := c.buildError(err, "enrollment request failed")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// DeleteOne cancels the caller's enrollment in a course.
func (c *EnrollmentsController) DeleteOne() {
	courseID, err := internalhelpers.ParamInt64(c.Ctx, ":courseId")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "invalid course id")
		c.writeJSON(resp.Status, resp)
		return
	}

	if err := internalservices.Cancel(c.Ctx, courseID); err != nil {
		resp := c.buildError(err, "cancellation failed")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(map[string]interface{}{"courseId": courseID, "cancelled": true})
	c.writeJSON(resp.Status, resp)
}

// DeleteWaiting abandons the caller's queue slot for a course.
func (c *EnrollmentsController) DeleteWaiting() {
	courseID, err := internalhelpers.ParamInt64(c.Ctx, ":courseId")
	if err != nil {
		resp := internalhelpers.Fail(http.StatusBadRequest, "invalid course id")
		c.writeJSON(resp.Status, resp)
		return
	}

	if err := internalservices.LeaveWaiting(c.Ctx, courseID); err != nil {
		resp := c.buildError(err, "leaving the waitlist failed")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(map[string]interface{}{"courseId": courseID, "left": true})
	c.writeJSON(resp.Status, resp)
}

func (c *EnrollmentsController) buildError(err error, fallback string) internaldto.APIResponseDTO {
	appErr := helpers.AsAppError(err, fallback)
	return internalhelpers.Fail(appErr.Status, appErr.Message)
}

func (c *EnrollmentsController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
