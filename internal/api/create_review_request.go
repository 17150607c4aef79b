package api

// swagger:model api.CreateReviewRequest
type CreateReviewRequest struct {
	ReviewText string `json:"review_text" form:"review_text" validate:"required" example:"Still gives me chills."`
	Rating     *int   `json:"rating,omitempty" form:"rating" validate:"omitempty,gte=1,lte=5" example:"5"`
	SongID     int    `json:"song_id" form:"song_id" validate:"required" example:"1"`
}
