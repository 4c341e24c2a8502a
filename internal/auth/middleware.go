package auth

import (
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/vladimirfomene/raggnet/internal/model"
	"github.com/vladimirfomene/raggnet/internal/repository"
)

const userContextKey = "currentUser"

// Guards exposes the authorization middleware gating handlers. Each guard
// runs strictly before the handler; the first failing guard short-circuits
// the pipeline. VerifyUser presumes LoginRequired already ran.
type Guards struct {
	store    TokenStoreInterface
	users    repository.UserRepository
	jwtCheck echo.MiddlewareFunc
}

// NewGuards builds the guard set from the token store and user repository.
// The JWT secret feeds the signature pre-check middleware.
func NewGuards(store TokenStoreInterface, users repository.UserRepository, secret string) *Guards {
	return &Guards{
		store: store,
		users: users,
		jwtCheck: echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(secret),
			TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
			// missing and malformed tokens are both authentication failures
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			},
		}),
	}
}

// CurrentUser returns the identity attached by LoginRequired, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// LoginRequired checks the bearer token's signature, resolves it against
// the session store, and attaches the caller's identity to the request
// context. Missing, expired, or revoked tokens get a 401.
func (g *Guards) LoginRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return g.jwtCheck(g.attachIdentity(next))
	}
}

// VerifyUser requires the resolved identity to match the :id path target.
func (g *Guards) VerifyUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || user.ID != c.Param("id") {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// AdminRequired requires a logged-in caller whose role is at least admin.
func (g *Guards) AdminRequired() echo.MiddlewareFunc {
	return g.roleRequired(model.RoleAdmin)
}

// SuperAdminRequired requires a logged-in super-admin caller.
func (g *Guards) SuperAdminRequired() echo.MiddlewareFunc {
	return g.roleRequired(model.RoleSuperAdmin)
}

func (g *Guards) roleRequired(min model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return g.jwtCheck(g.attachIdentity(func(c echo.Context) error {
			if !CurrentUser(c).Role.Meets(min) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}))
	}
}

// attachIdentity resolves the bearer token via the session store and loads
// the caller's current role from the database, so revocation and role
// changes take effect immediately.
func (g *Guards) attachIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		userID, err := g.store.Resolve(c.Request().Context(), token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}
		user, err := g.users.FindByID(c.Request().Context(), userID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}
		c.Set(userContextKey, user)
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimPrefix(header, "Bearer ")
}
