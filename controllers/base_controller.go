package controllers

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/yeongbeomSong/CourseEnroll/helpers"
	"github.com/yeongbeomSong/CourseEnroll/models/requestresponse"

	beego "github.com/beego/beego/v2/server/web"
)

// BaseController centralizes the standard response envelope.
type BaseController struct {
	beego.Controller
}

// RespondSuccess wraps a payload in the standard format.
func (c *BaseController) RespondSuccess(status int, message string, data interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = requestresponse.NewSuccess(status, message, data)
	_ = c.ServeJSON()
}

// RespondError turns any error into the standard envelope.
func (c *BaseController) RespondError(err error) {
	appErr := helpers.AsAppError(err, "unexpected error")
	c.Ctx.Output.SetStatus(appErr.Status)
	c.Data["json"] = requestresponse.NewError(appErr.Status, appErr.Message, nil)
	_ = c.ServeJSON()
}

// ParseJSONBody deserializes the request body into out.
func (c *BaseController) ParseJSONBody(out interface{}) error {
	raw := c.Ctx.Input.RequestBody

	if len(raw) == 0 && c.Ctx.Request != nil && c.Ctx.Request.Body != nil {
		b, err := io.ReadAll(c.Ctx.Request.Body)
		if err != nil {
			return err
		}
		raw = b

		// cache + reinject
		c.Ctx.Input.RequestBody = b
		c.Ctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	}

	return json.Unmarshal(raw, out)
}
