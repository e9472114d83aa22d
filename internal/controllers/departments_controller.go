package controllers

import (
	rootcontrollers "github.com/yeongbeomSong/CourseEnroll/controllers"
	"github.com/yeongbeomSong/CourseEnroll/helpers"
	internaldto "github.com/yeongbeomSong/CourseEnroll/internal/dto"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
	internalservices "github.com/yeongbeomSong/CourseEnroll/internal/services"
)

// DepartmentsController serves the public department list.
type DepartmentsController struct {
	rootcontrollers.BaseController
}

// GetList lists departments.
func (c *DepartmentsController) GetList() {
	result, err := internalservices.ListDepartments(c.Ctx)
	if err != nil {
		resp := c.buildError(err, "error listing departments")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

func (c *DepartmentsController) buildError(err error, fallback string) internaldto.APIResponseDTO {
	appErr := helpers.AsAppError(err, fallback)
	return internalhelpers.Fail(appErr.Status, appErr.Message)
}

func (c *DepartmentsController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
