package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"discnotes/internal/database"
	"discnotes/internal/model"
	"discnotes/internal/service"
	"discnotes/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var getUserByID = store.GetUserByID

func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

// RequireAuth 驗證 Bearer 令牌並將對應使用者掛到請求 context
// 令牌缺失、驗證失敗或查無使用者皆回 401，後續 handler 不會執行
func RequireAuth(db database.DB, auth *service.Auth) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := extractToken(c)
			if err != nil {
				return err
			}
			claims, err := auth.VerifyAccessToken(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
			}
			user, err := getUserByID(c.Request().Context(), db, claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown token subject")
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireRole 檢查 RequireAuth 掛上的使用者角色，必須接在 RequireAuth 之後
// 角色不符回 403，純授權檢查不做任何 I/O
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextUserKey).(*model.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
		}
	}
}
