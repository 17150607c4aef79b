package api

// swagger:model api.CreateSongRequest
type CreateSongRequest struct {
	Title  string  `json:"title" form:"title" validate:"required" example:"Teardrop"`
	Artist string  `json:"artist" form:"artist" validate:"required" example:"Massive Attack"`
	Album  *string `json:"album,omitempty" form:"album" example:"Mezzanine"`
	Year   *int    `json:"year,omitempty" form:"year" example:"1998"`
	Genre  *string `json:"genre,omitempty" form:"genre" example:"trip hop"`
}
