package helpers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/beego/beego/v2/server/web/context"
)

const ctxClaimsKey = "__course_enroll_jwt_claims"

// Roles issued by the registry.
const (
	RoleStudent   = "ROLE_STUDENT"
	RoleProfessor = "ROLE_PROFESSOR"
	RoleAdmin     = "ROLE_ADMIN"
)

var (
	// ErrNoAuthHeader is returned when no Authorization header is present.
	ErrNoAuthHeader = errors.New("authorization header missing")
	// ErrInvalidToken is returned when the token is not a well-formed JWT.
	ErrInvalidToken = errors.New("invalid bearer token")
	// ErrClaimNotFound indicates a required claim is absent.
	ErrClaimNotFound = errors.New("claim not found")
)

// Claims decodes and caches the JWT claims from the Authorization header.
// Signature verification belongs to the registry that issued the token; the
// mid-tier only reads identity and roles from it.
func Claims(ctx *context.Context) (map[string]interface{}, error) {
	if cached := ctx.Input.GetData(ctxClaimsKey); cached != nil {
		if claims, ok := cached.(map[string]interface{}); ok {
			return claims, nil
		}
	}

	token, err := extractBearer(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := decodeClaims(token)
	if err != nil {
		return nil, err
	}
	ctx.Input.SetData(ctxClaimsKey, claims)
	return claims, nil
}

// BearerToken returns the raw bearer token of the incoming request.
func BearerToken(ctx *context.Context) (string, error) {
	return extractBearer(ctx)
}

// GetUserID returns the authenticated user's id claim.
func GetUserID(ctx *context.Context) (int64, error) {
	return getInt64Claim(ctx, "userId")
}

// RequireRole validates that the token carries at least one of the given roles.
func RequireRole(ctx *context.Context, roles ...string) error {
	if len(roles) == 0 {
		return nil
	}
	claims, err := Claims(ctx)
	if err != nil {
		return err
	}

	userRoles := extractRoles(claims)
	if len(userRoles) == 0 {
		return fmt.Errorf("%w: roles", ErrClaimNotFound)
	}

	roleSet := make(map[string]struct{}, len(userRoles))
	for _, r := range userRoles {
		roleSet[strings.ToUpper(strings.TrimSpace(r))] = struct{}{}
	}

	for _, required := range roles {
		if _, ok := roleSet[strings.ToUpper(strings.TrimSpace(required))]; ok {
			return nil
		}
	}
	return errors.New("insufficient roles")
}

func getInt64Claim(ctx *context.Context, key string) (int64, error) {
	claims, err := Claims(ctx)
	if err != nil {
		return 0, err
	}
	value, ok := claims[key]
	if !ok {
		// Registry tokens historically used "sub" for the numeric user id.
		value, ok = claims["sub"]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrClaimNotFound, key)
		}
	}
	switch v := value.(type) {
	case float64:
		return int64(v), nil
	case json.Number:
		return v.Int64()
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, fmt.Errorf("%w: %s", ErrClaimNotFound, key)
		}
		return json.Number(strings.TrimSpace(v)).Int64()
	default:
		return 0, fmt.Errorf("claim %s is not numeric", key)
	}
}

func extractBearer(ctx *context.Context) (string, error) {
	header := strings.TrimSpace(ctx.Input.Header("Authorization"))
	if header == "" {
		return "", ErrNoAuthHeader
	}

	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(header[7:]), nil
}

func decodeClaims(token string) (map[string]interface{}, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims map[string]interface{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func extractRoles(claims map[string]interface{}) []string {
	if roles := parseRolesValue(claims["roles"]); len(roles) > 0 {
		return roles
	}
	if roles := parseRolesValue(claims["role"]); len(roles) > 0 {
		return roles
	}
	if roles := parseRolesValue(claims["auth"]); len(roles) > 0 {
		return roles
	}
	return nil
}

func parseRolesValue(raw interface{}) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		split := strings.Split(v, ",")
		result := make([]string, 0, len(split))
		for _, part := range split {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					result = append(result, trimmed)
				}
			}
		}
		return result
	case []string:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	default:
		return nil
	}
}
