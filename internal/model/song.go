package model

import "time"

type Song struct {
	ID        int       `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Artist    string    `db:"artist" json:"artist"`
	Album     *string   `db:"album" json:"album,omitempty"`
	Year      *int      `db:"year" json:"year,omitempty"`
	Genre     *string   `db:"genre" json:"genre,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
