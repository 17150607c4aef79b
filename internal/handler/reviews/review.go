package reviews

import (
	"errors"
	"net/http"

	"discnotes/internal/api"
	"discnotes/internal/database"
	"discnotes/internal/model"
	"discnotes/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	createReview = store.CreateReview
	listReviews  = store.ListReviews
)

const pgForeignKeyViolation = "23503"

// CreateReviewHandler 建立歌曲評論
// @Summary     新增評論
// @Description 建立歌曲評論，review_text 與 song_id 為必填，rating 介於 1 到 5
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       request body api.CreateReviewRequest true "評論資料"
// @Success     201 {object} api.ReviewResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /reviews [post]
func CreateReviewHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateReviewRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		review, err := createReview(c.Request().Context(), db, &model.Review{
			ReviewText: req.ReviewText,
			Rating:     req.Rating,
			SongID:     req.SongID,
		})
		if err != nil {
			// 外鍵違反代表 song_id 指向不存在的歌曲
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "song not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.ReviewResponse{
			ID:         review.ID,
			ReviewText: review.ReviewText,
			Rating:     review.Rating,
			SongID:     review.SongID,
			CreatedAt:  review.CreatedAt,
		})
	}
}

// ListReviewsHandler 列出所有評論並帶出歌曲資料
// @Summary     評論列表
// @Description 由新到舊回傳所有評論，並帶出關聯歌曲
// @Tags        reviews
// @Produce     json
// @Success     200 {array} api.ReviewResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /reviews [get]
func ListReviewsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		reviews, err := listReviews(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.ReviewResponse, 0, len(reviews))
		for _, rw := range reviews {
			song := api.SongResponse{
				ID:        rw.Song.ID,
				Title:     rw.Song.Title,
				Artist:    rw.Song.Artist,
				Album:     rw.Song.Album,
				Year:      rw.Song.Year,
				Genre:     rw.Song.Genre,
				CreatedAt: rw.Song.CreatedAt,
			}
			resp = append(resp, api.ReviewResponse{
				ID:         rw.Review.ID,
				ReviewText: rw.Review.ReviewText,
				Rating:     rw.Review.Rating,
				SongID:     rw.Review.SongID,
				Song:       &song,
				CreatedAt:  rw.Review.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
