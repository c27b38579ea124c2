package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"talentsync/config"
	"talentsync/internal/core"
	cErr "talentsync/internal/pkg/error"
	"talentsync/internal/pkg/response"
	"talentsync/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// Auth 驗證外部 identity provider 簽發的 HMAC bearer token，並限制只能操作 token 內的組織
type Auth struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	config *config.Configuration
	parser *jwt.Parser
}

func NewAuth(logger *zap.Logger, trace *telemetry.Trace, config *config.Configuration) *Auth {
	return &Auth{
		logger: logger,
		trace:  trace,
		config: config,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})),
	}
}

func (middleware *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !middleware.config.Auth.Enabled {
			c.Next()
			return
		}
		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanAuthMiddleware))
		meta := core.TraceAuthMiddlewareMeta{}
		fail := func(status string, cause *cErr.Error) {
			meta.Status = status
			middleware.trace.ApplyTraceAttributes(span, meta)
			response.AbortWithError(c, cause)
			end(cause)
		}

		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			fail("missing_token", cErr.Unauthorized("Missing bearer token"))
			return
		}
		claims, err := middleware.parse(raw)
		if err != nil {
			middleware.logger.Debug("rejected bearer token", zap.Error(err))
			fail("invalid_token", cErr.InvalidSession("Invalid or expired token"))
			return
		}
		meta.Subject, meta.OrgID, meta.Role = claims.Subject, claims.OrgID, string(claims.Role)

		if orgID := orgIDOf(c); orgID != "" && !claims.CanAccessOrg(orgID) {
			fail("forbidden_org", cErr.OrganizationForbidden("no access to organization "+orgID))
			return
		}
		if !readOnlyMethod(c.Request.Method) && !claims.CanWrite() {
			fail("read_only", cErr.Forbidden("role "+string(claims.Role)+" is read-only"))
			return
		}

		meta.Status = "success"
		middleware.trace.ApplyTraceAttributes(span, meta)
		end(nil)

		// 下游 handler / service 從 context 取得 claims
		c.Set(core.ContextClaimsKey, claims)
		c.Set(core.ContextTraceKey, core.WithClaims(ctx, claims))
		c.Request = c.Request.WithContext(core.WithClaims(c.Request.Context(), claims))
		c.Next()
	}
}

func (middleware *Auth) parse(raw string) (*core.Claims, error) {
	claims := &core.Claims{}
	_, err := middleware.parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(middleware.config.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if issuer := middleware.config.Auth.Issuer; issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if audience := middleware.config.Auth.Audience; audience != "" && !claims.VerifyAudience(audience, true) {
		return nil, fmt.Errorf("token not issued for %q", audience)
	}
	if claims.OrgID == "" && claims.Role != core.AccessRoleSuperAdmin {
		return nil, fmt.Errorf("token has no organization")
	}
	return claims, nil
}

// ClaimsFrom handler 取得已驗證的 claims；auth 停用時回傳 nil
func ClaimsFrom(c *gin.Context) *core.Claims {
	raw, ok := c.Get(core.ContextClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := raw.(*core.Claims)
	return claims
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func readOnlyMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
