package router

import (
	"github.com/labstack/echo/v4"

	"discnotes/internal/cache"
	"discnotes/internal/database"
	"discnotes/internal/handler/auth"
	"discnotes/internal/handler/reviews"
	"discnotes/internal/handler/songs"
	"discnotes/internal/middleware"
	"discnotes/internal/model"
	"discnotes/internal/service"
	"discnotes/internal/worker"
)

// Setup 註冊所有路由與中介層
// 歌曲寫入操作必須先通過 RequireAuth 再通過 RequireRole(admin)
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, authSvc *service.Auth, wp worker.Pool) {
	api := e.Group("/api")

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db, authSvc))
	api.POST("/auth/login", auth.LoginHandler(db, authSvc))

	// 歌曲：讀取公開，寫入僅限管理員
	adminOnly := []echo.MiddlewareFunc{
		middleware.RequireAuth(db, authSvc),
		middleware.RequireRole(model.RoleAdmin),
	}
	api.GET("/songs", songs.ListSongsHandler(db, rdb))
	api.POST("/songs", songs.CreateSongHandler(db, rdb, wp), adminOnly...)
	api.DELETE("/songs/:id", songs.DeleteSongHandler(db, rdb, wp), adminOnly...)

	// 評論：公開建立與查詢
	api.POST("/reviews", reviews.CreateReviewHandler(db))
	api.GET("/reviews", reviews.ListReviewsHandler(db))
}
