package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beego/beego/v2/server/web/context"
)

// ParamInt64 extracts a route parameter as a positive int64.
func ParamInt64(ctx *context.Context, name string) (int64, error) {
	if ctx == nil {
		return 0, fmt.Errorf("nil context")
	}
	raw := strings.TrimSpace(ctx.Input.Param(name))
	if raw == "" {
		return 0, fmt.Errorf("parameter %s empty", name)
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val <= 0 {
		return 0, fmt.Errorf("parameter %s invalid", name)
	}
	return val, nil
}
