package model

import "time"

type Review struct {
	ID         int       `db:"id" json:"id"`
	ReviewText string    `db:"review_text" json:"review_text"`
	Rating     *int      `db:"rating" json:"rating,omitempty"`
	SongID     int       `db:"song_id" json:"song_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
