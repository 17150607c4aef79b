package songs

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"discnotes/internal/api"
	"discnotes/internal/cache"
	"discnotes/internal/database"
	"discnotes/internal/model"
	"discnotes/internal/store"
	"discnotes/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listSongs  = store.ListSongs
	createSong = store.CreateSong
	deleteSong = store.DeleteSong
)

const (
	songListCacheKey = "songs:recent"
	songListCacheTTL = 30 * time.Second
)

func toSongResponse(s model.Song) api.SongResponse {
	return api.SongResponse{
		ID:        s.ID,
		Title:     s.Title,
		Artist:    s.Artist,
		Album:     s.Album,
		Year:      s.Year,
		Genre:     s.Genre,
		CreatedAt: s.CreatedAt,
	}
}

// invalidateSongList 透過 worker pool 非同步清掉歌曲列表快取
// 請求結束後才執行，因此使用背景 context
func invalidateSongList(wp worker.Pool, rdb cache.Cache) {
	wp.Submit(func() {
		rdb.Del(context.Background(), songListCacheKey)
	})
}

// ListSongsHandler 列出所有歌曲
// @Summary     歌曲列表
// @Description 依建立時間由新到舊回傳所有歌曲，結果會短暫快取
// @Tags        songs
// @Produce     json
// @Success     200 {array} api.SongResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /songs [get]
func ListSongsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, songListCacheKey).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		songs, err := listSongs(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.SongResponse, 0, len(songs))
		for _, s := range songs {
			resp = append(resp, toSongResponse(s))
		}

		if buf, err := json.Marshal(resp); err == nil {
			rdb.Set(ctx, songListCacheKey, buf, songListCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CreateSongHandler 建立新歌曲，僅限管理員
// @Summary     新增歌曲
// @Description 建立新歌曲，title 與 artist 為必填
// @Tags        songs
// @Accept      json
// @Produce     json
// @Param       request body api.CreateSongRequest true "歌曲資料"
// @Success     201 {object} api.SongResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /songs [post]
func CreateSongHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateSongRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		song, err := createSong(c.Request().Context(), db, &model.Song{
			Title:  req.Title,
			Artist: req.Artist,
			Album:  req.Album,
			Year:   req.Year,
			Genre:  req.Genre,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		invalidateSongList(wp, rdb)
		return c.JSON(http.StatusCreated, toSongResponse(*song))
	}
}

// DeleteSongHandler 刪除歌曲，僅限管理員
// @Summary     刪除歌曲
// @Description 依 ID 刪除歌曲，ID 不存在回 404
// @Tags        songs
// @Param       id path int true "歌曲 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /songs/{id} [delete]
func DeleteSongHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid song ID"})
		}

		n, err := deleteSong(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if n == 0 {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "song not found"})
		}

		invalidateSongList(wp, rdb)
		return c.NoContent(http.StatusNoContent)
	}
}
