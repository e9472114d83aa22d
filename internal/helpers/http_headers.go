package helpers

import (
	"strings"

	"github.com/google/uuid"

	"github.com/beego/beego/v2/server/web/context"
)

// OutboundHeaders builds the header set propagated to the registry on behalf of
// the incoming request: the caller's Authorization and a correlation id, which
// is generated when the caller did not supply one.
func OutboundHeaders(ctx *context.Context) map[string]string {
	headers := make(map[string]string)
	if ctx != nil {
		if auth := strings.TrimSpace(ctx.Input.Header("Authorization")); auth != "" {
			headers["Authorization"] = auth
		}
		if corr := strings.TrimSpace(ctx.Input.Header("X-Correlation-Id")); corr != "" {
			headers["X-Correlation-Id"] = corr
		}
	}
	if headers["X-Correlation-Id"] == "" {
		headers["X-Correlation-Id"] = uuid.NewString()
	}
	return headers
}

// BearerHeaders builds the header set for calls made with a given token, as the
// catalog poller does with the service account token.
func BearerHeaders(token string) map[string]string {
	headers := map[string]string{
		"X-Correlation-Id": uuid.NewString(),
	}
	if strings.TrimSpace(token) != "" {
		headers["Authorization"] = "Bearer " + strings.TrimSpace(token)
	}
	return headers
}
