package middlewares

import (
	"sync"

	internalhelpers "github.com/yeongbeomSong/CourseEnroll/internal/helpers"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"
)

var authOnce sync.Once

// UseAuth registers the authentication filter exactly once.
func UseAuth() {
	authOnce.Do(func() {
		beego.InsertFilter("/*", beego.BeforeRouter, authFilter)
	})
}

// AuthFilter exposes the filter for manual registration scenarios.
func AuthFilter(ctx *context.Context) {
	authFilter(ctx)
}

func authFilter(ctx *context.Context) {
	// Decode claims eagerly; keep the error in context unless the header is
	// simply absent (public routes such as login/signup/departments).
	if _, err := internalhelpers.Claims(ctx); err != nil && err != internalhelpers.ErrNoAuthHeader {
		ctx.Input.SetData("auth_error", err)
	}
}
