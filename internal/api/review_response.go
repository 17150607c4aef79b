package api

import "time"

// swagger:model api.ReviewResponse
// 列表查詢會帶出 song，建立時僅回 song_id
type ReviewResponse struct {
	ID         int           `json:"id" example:"1"`
	ReviewText string        `json:"review_text" example:"Still gives me chills."`
	Rating     *int          `json:"rating,omitempty" example:"5"`
	SongID     int           `json:"song_id" example:"1"`
	Song       *SongResponse `json:"song,omitempty"`
	CreatedAt  time.Time     `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
