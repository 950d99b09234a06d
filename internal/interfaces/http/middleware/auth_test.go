package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdesk-io/linkdesk/internal/infrastructure/auth"
	"github.com/linkdesk-io/linkdesk/internal/shared/authorization"
	"github.com/linkdesk-io/linkdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestContext(authHeader string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	return c, w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService("test-secret", 60), logger.NewNop())

	c, w := newAuthTestContext("")
	m.RequireAuth()(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService("test-secret", 60), logger.NewNop())

	c, w := newAuthTestContext("Token abc")
	m.RequireAuth()(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService("test-secret", 60), logger.NewNop())

	c, w := newAuthTestContext("Bearer not-a-token")
	m.RequireAuth()(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireAuth_WrongSigningKey(t *testing.T) {
	other := auth.NewJWTService("other-secret", 60)
	token, _, err := other.Generate(authorization.Actor{UserID: 1, Role: authorization.RoleUser})
	require.NoError(t, err)

	m := NewAuthMiddleware(auth.NewJWTService("test-secret", 60), logger.NewNop())

	c, w := newAuthTestContext("Bearer " + token)
	m.RequireAuth()(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidTokenStoresActor(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", 60)
	actor := authorization.Actor{UserID: 7, Role: authorization.RoleUserManager, OrganizationID: 3}
	token, _, err := jwtSvc.Generate(actor)
	require.NoError(t, err)

	m := NewAuthMiddleware(jwtSvc, logger.NewNop())

	c, w := newAuthTestContext("Bearer " + token)
	m.RequireAuth()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())
	assert.Equal(t, actor, ActorFromContext(c))

	userID, ok := c.Get("user_id")
	require.True(t, ok)
	assert.Equal(t, uint(7), userID)
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService("test-secret", 60), logger.NewNop())

	c, w := newAuthTestContext("")
	c.Set("actor", authorization.Actor{UserID: 7, Role: authorization.RoleUserManager})
	m.RequireAdmin()(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService("test-secret", 60), logger.NewNop())

	c, w := newAuthTestContext("")
	c.Set("actor", authorization.Actor{UserID: 1, Role: authorization.RoleAdmin})
	m.RequireAdmin()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())
}

func TestRequireRole_AdminSatisfiesEveryRole(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService("test-secret", 60), logger.NewNop())

	c, w := newAuthTestContext("")
	c.Set("actor", authorization.Actor{UserID: 1, Role: authorization.RoleAdmin})
	m.RequireRole(authorization.RoleInventoryManager)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())
}

func TestRequireRole_RejectsOtherRoles(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService("test-secret", 60), logger.NewNop())

	c, w := newAuthTestContext("")
	c.Set("actor", authorization.Actor{UserID: 7, Role: authorization.RoleUser})
	m.RequireRole(authorization.RoleInventoryManager)(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
}

func TestRequireManager_AdmitsBothManagerKinds(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTService("test-secret", 60), logger.NewNop())

	for _, role := range []authorization.Role{
		authorization.RoleUserManager,
		authorization.RoleInventoryManager,
		authorization.RoleAdmin,
	} {
		c, w := newAuthTestContext("")
		c.Set("actor", authorization.Actor{UserID: 7, Role: role})
		m.RequireManager()(c)

		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}

	c, w := newAuthTestContext("")
	c.Set("actor", authorization.Actor{UserID: 7, Role: authorization.RoleUser})
	m.RequireManager()(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestActorFromContext_ZeroWhenUnset(t *testing.T) {
	c, _ := newAuthTestContext("")

	actor := ActorFromContext(c)

	assert.Equal(t, authorization.Actor{}, actor)
}
