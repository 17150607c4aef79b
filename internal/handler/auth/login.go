package auth

import (
	"net/http"
	"strings"

	"discnotes/internal/api"
	"discnotes/internal/database"
	"discnotes/internal/service"
	"discnotes/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, auth *service.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 查無帳號與密碼錯誤回覆一致，避免帳號枚舉
		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, expiresAt, err := auth.IssueAccessToken(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Status:      "success",
			AccessToken: token,
			ExpiresAt:   expiresAt,
		})
	}
}
