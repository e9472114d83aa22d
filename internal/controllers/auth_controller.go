package controllers

import (
	"net/http"

	rootcontrollers "github.com/yeongbeomSong/CourseEnroll/controllers"
	"github.com/yeongbeomSong/CourseEnroll/helpers"
	internaldto "github.com/yeongbeomSong/CourseEnroll/internal/dto"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
	internalservices "github.com/yeongbeomSong/CourseEnroll/internal/services"
)

// AuthController proxies authentication to the registry.
type AuthController struct {
	rootcontrollers.BaseController
}

// PostLogin exchanges credentials for a registry-issued token.
func (c *AuthController) PostLogin() {
	var body map[string]interface{}
	if err := c.ParseJSONBody(&body); err != nil || len(body) == 0 {
		resp := internalhelpers.Fail(http.StatusBadRequest, "credentials required")
		c.writeJSON(resp.Status, resp)
		return
	}

	result, err := internalservices.Login(c.Ctx, body)
	if err != nil {
		resp := c.buildError(err, "login failed")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// PostSignup creates an account.
func (c *AuthController) PostSignup() {
	var body map[string]interface{}
	if err := c.ParseJSONBody(&body); err != nil || len(body) == 0 {
		resp := internalhelpers.Fail(http.StatusBadRequest, "signup data required")
		c.writeJSON(resp.Status, resp)
		return
	}

	result, err := internalservices.Signup(c.Ctx, body)
	if err != nil {
		resp := c.buildError(err, "signup failed")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

// GetMe returns the caller's account profile.
func (c *AuthController) GetMe() {
	result, err := internalservices.Me(c.Ctx)
	if err != nil {
		resp := c.buildError(err, "error loading profile")
		c.writeJSON(resp.Status, resp)
		return
	}

	resp := internalhelpers.Ok(result)
	c.writeJSON(resp.Status, resp)
}

func (c *AuthController) buildError(err error, fallback string) internaldto.APIResponseDTO {
	appErr := helpers.AsAppError(err, fallback)
	return internalhelpers.Fail(appErr.Status, appErr.Message)
}

func (c *AuthController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
