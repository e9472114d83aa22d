package helpers

import (
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beego/beego/v2/server/web/context"
)

func makeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString(payload)
	return header + "." + body + ".signature"
}

func requestContext(authHeader string) *context.Context {
	r := httptest.NewRequest("GET", "/v1/courses", nil)
	if authHeader != "" {
		r.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	ctx := context.NewContext()
	ctx.Reset(w, r)
	return ctx
}

func TestClaims(t *testing.T) {
	t.Run("decodes and caches", func(t *testing.T) {
		token := makeToken(t, map[string]interface{}{"userId": 42, "roles": []string{"ROLE_STUDENT"}})
		ctx := requestContext("Bearer " + token)

		claims, err := Claims(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 42, claims["userId"])

		again, err := Claims(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, claims, again)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := Claims(requestContext(""))
		assert.ErrorIs(t, err, ErrNoAuthHeader)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := Claims(requestContext("Bearer not-a-jwt"))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		_, err := Claims(requestContext("Basic dXNlcjpwYXNz"))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestGetUserID(t *testing.T) {
	t.Run("userId claim", func(t *testing.T) {
		token := makeToken(t, map[string]interface{}{"userId": 42})
		id, err := GetUserID(requestContext("Bearer " + token))
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("falls back to sub", func(t *testing.T) {
		token := makeToken(t, map[string]interface{}{"sub": "17"})
		id, err := GetUserID(requestContext("Bearer " + token))
		require.NoError(t, err)
		assert.Equal(t, int64(17), id)
	})

	t.Run("missing claim", func(t *testing.T) {
		token := makeToken(t, map[string]interface{}{"name": "someone"})
		_, err := GetUserID(requestContext("Bearer " + token))
		assert.ErrorIs(t, err, ErrClaimNotFound)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("role present", func(t *testing.T) {
		token := makeToken(t, map[string]interface{}{"roles": []string{RoleStudent}})
		assert.NoError(t, RequireRole(requestContext("Bearer "+token), RoleStudent))
	})

	t.Run("comma separated roles string", func(t *testing.T) {
		token := makeToken(t, map[string]interface{}{"roles": "ROLE_ADMIN,ROLE_PROFESSOR"})
		assert.NoError(t, RequireRole(requestContext("Bearer "+token), RoleProfessor))
	})

	t.Run("role missing", func(t *testing.T) {
		token := makeToken(t, map[string]interface{}{"roles": []string{RoleStudent}})
		assert.Error(t, RequireRole(requestContext("Bearer "+token), RoleAdmin))
	})

	t.Run("any of several accepted", func(t *testing.T) {
		token := makeToken(t, map[string]interface{}{"roles": []string{RoleAdmin}})
		assert.NoError(t, RequireRole(requestContext("Bearer "+token), RoleStudent, RoleAdmin))
	})

	t.Run("no roles claim", func(t *testing.T) {
		token := makeToken(t, map[string]interface{}{"userId": 1})
		assert.Error(t, RequireRole(requestContext("Bearer "+token), RoleStudent))
	})
}

func TestBearerToken(t *testing.T) {
	token := makeToken(t, map[string]interface{}{"userId": 1})
	got, err := BearerToken(requestContext("Bearer " + token))
	require.NoError(t, err)
	assert.Equal(t, token, got)
}
