package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"discnotes/internal/api"
	"discnotes/internal/database"
	"discnotes/internal/model"
	"discnotes/internal/service"
	"discnotes/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
)

const pgUniqueViolation = "23505"

// RegisterHandler 建立新帳號並立即簽發存取令牌
// 請求中的 role 欄位一律忽略，新帳號固定為一般使用者
// @Summary     註冊使用者
// @Description 接收 Email 與 Password 建立新帳號 (Email 會自動轉小寫)，回傳令牌與使用者資料
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.RegisterResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, auth *service.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			Role:         model.RoleUser,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		token, expiresAt, err := auth.IssueAccessToken(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, api.RegisterResponse{
			Status:      "success",
			AccessToken: token,
			ExpiresAt:   expiresAt,
			User: api.UserResponse{
				ID:        user.ID,
				Email:     user.Email,
				Role:      user.Role,
				CreatedAt: user.CreatedAt,
			},
		})
	}
}
