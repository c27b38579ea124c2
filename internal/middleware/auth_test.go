package middleware

import (
	"net/http"
	"testing"
	"time"

	"talentsync/config"
	"talentsync/internal/core"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/pkg/response"
	"talentsync/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "secret"

func signToken(t *testing.T, claims core.Claims) string {
	t.Helper()
	if claims.Issuer == "" {
		claims.Issuer = "idp"
	}
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func newAuthEngine(t *testing.T, enabled bool) (*gin.Engine, *[]*core.Claims) {
	t.Helper()
	conf := testConfig()
	conf.Auth = config.Auth{Enabled: enabled, Secret: testSecret, Issuer: "idp"}
	seen := &[]*core.Claims{}

	engine := newEngine(conf, newTestMetric(conf), NewAuth(zap.NewNop(), &telemetry.Trace{}, conf).Handler())
	record := func(c *gin.Context) {
		claims := ClaimsFrom(c)
		// service 層透過 request context 取得同一份 claims
		if claims != nil {
			assert.Same(t, claims, core.ClaimsFrom(c.Request.Context()))
		}
		*seen = append(*seen, claims)
		response.Success(c, gin.H{"ok": true})
	}
	engine.GET("/api/organizations/:orgID/board", record)
	engine.POST("/api/organizations/:orgID/board/assignments", record)
	return engine, seen
}

func TestAuthDisabledPassesThrough(t *testing.T) {
	engine, seen := newAuthEngine(t, false)

	w := serve(engine, http.MethodPost, "/api/organizations/org-1/board/assignments", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, *seen, 1)
	assert.Nil(t, (*seen)[0])
}

func TestAuthRejects(t *testing.T) {
	expired := core.Claims{OrgID: "org-1", Role: core.AccessRoleAdmin}
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	foreignIssuer := core.Claims{OrgID: "org-1", Role: core.AccessRoleAdmin}
	foreignIssuer.Issuer = "someone-else"

	cases := []struct {
		name   string
		method string
		target string
		header http.Header
		status int
		code   int
	}{
		{"missing token", http.MethodGet, "/api/organizations/org-1/board", nil, http.StatusUnauthorized, cErr.UNAUTHORIZED},
		{"not bearer", http.MethodGet, "/api/organizations/org-1/board", http.Header{"Authorization": []string{"Basic abc"}}, http.StatusUnauthorized, cErr.UNAUTHORIZED},
		{"garbage", http.MethodGet, "/api/organizations/org-1/board", bearer("not-a-jwt"), http.StatusUnauthorized, cErr.INVALID_SESSION},
		{"expired", http.MethodGet, "/api/organizations/org-1/board", bearer(signToken(t, expired)), http.StatusUnauthorized, cErr.INVALID_SESSION},
		{"issuer", http.MethodGet, "/api/organizations/org-1/board", bearer(signToken(t, foreignIssuer)), http.StatusUnauthorized, cErr.INVALID_SESSION},
		{"no org", http.MethodGet, "/api/organizations/org-1/board", bearer(signToken(t, core.Claims{Role: core.AccessRoleAdmin})), http.StatusUnauthorized, cErr.INVALID_SESSION},
		{"other org", http.MethodGet, "/api/organizations/org-2/board", bearer(signToken(t, core.Claims{OrgID: "org-1", Role: core.AccessRoleAdmin})), http.StatusForbidden, cErr.ORGANIZATION_FORBIDDEN},
		{"read only", http.MethodPost, "/api/organizations/org-1/board/assignments", bearer(signToken(t, core.Claims{OrgID: "org-1", Role: core.AccessRoleUser})), http.StatusForbidden, cErr.FORBIDDEN},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, seen := newAuthEngine(t, true)

			w := serve(engine, tc.method, tc.target, tc.header)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, decode(t, w).Code)
			assert.Empty(t, *seen)
		})
	}
}

func TestAuthAcceptsValidToken(t *testing.T) {
	engine, seen := newAuthEngine(t, true)

	token := signToken(t, core.Claims{Email: "lead@example.com", OrgID: "org-1", Role: core.AccessRoleUser})
	w := serve(engine, http.MethodGet, "/api/organizations/org-1/board", bearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, *seen, 1)
	assert.Equal(t, "lead@example.com", (*seen)[0].Actor())
	assert.Equal(t, core.AccessRoleUser, (*seen)[0].Role)
}

func TestAuthSuperAdminCrossesOrganizations(t *testing.T) {
	engine, seen := newAuthEngine(t, true)

	token := signToken(t, core.Claims{Role: core.AccessRoleSuperAdmin})
	w := serve(engine, http.MethodPost, "/api/organizations/any-org/board/assignments", bearer(token))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, *seen, 1)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("  bearer   abc "))
	assert.Empty(t, bearerToken("abc"))
	assert.Empty(t, bearerToken("Token abc"))
}
