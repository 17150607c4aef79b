package api

import "time"

// swagger:model api.SongResponse
type SongResponse struct {
	ID        int       `json:"id" example:"1"`
	Title     string    `json:"title" example:"Teardrop"`
	Artist    string    `json:"artist" example:"Massive Attack"`
	Album     *string   `json:"album,omitempty" example:"Mezzanine"`
	Year      *int      `json:"year,omitempty" example:"1998"`
	Genre     *string   `json:"genre,omitempty" example:"trip hop"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
