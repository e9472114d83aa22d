package services

import (
	webcontext "github.com/beego/beego/v2/server/web/context"

	"github.com/yeongbeomSong/CourseEnroll/internal/clients"
	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"
)

// Login proxies the credential exchange to the registry and returns its token
// payload untouched.
func Login(webctx *webcontext.Context, body map[string]interface{}) (map[string]interface{}, error) {
	out, err := clients.Registry().Login(requestContext(webctx), internalhelpers.OutboundHeaders(webctx), body)
	if err != nil {
		return nil, remoteError(err, "login failed")
	}
	return out, nil
}

// Signup proxies account creation to the registry.
func Signup(webctx *webcontext.Context, body map[string]interface{}) (map[string]interface{}, error) {
	out, err := clients.Registry().Signup(requestContext(webctx), internalhelpers.OutboundHeaders(webctx), body)
	if err != nil {
		return nil, remoteError(err, "signup failed")
	}
	return out, nil
}

// Me returns the caller's account profile.
func Me(webctx *webcontext.Context) (map[string]interface{}, error) {
	out, err := clients.Registry().Me(requestContext(webctx), internalhelpers.OutboundHeaders(webctx))
	if err != nil {
		return nil, remoteError(err, "could not load profile")
	}
	return out, nil
}
