package store

import (
	"context"
	"fmt"

	"discnotes/internal/database"
	"discnotes/internal/model"
)

// ReviewWithSong 為列表查詢回傳的評論加上關聯歌曲
type ReviewWithSong struct {
	Review model.Review
	Song   model.Song
}

func CreateReview(ctx context.Context, db database.DB, r *model.Review) (*model.Review, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO reviews (review_text, rating, song_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		r.ReviewText,
		r.Rating,
		r.SongID,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateReview: %w", err)
	}
	return r, nil
}

// ListReviews 由新到舊列出所有評論並帶出歌曲資料
func ListReviews(ctx context.Context, db database.DB) ([]ReviewWithSong, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.review_text, r.rating, r.song_id, r.created_at,
		        s.id, s.title, s.artist, s.album, s.year, s.genre, s.created_at
		 FROM reviews r
		 JOIN songs s ON s.id = r.song_id
		 ORDER BY r.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReviews: %w", err)
	}
	defer rows.Close()

	reviews := []ReviewWithSong{}
	for rows.Next() {
		var rw ReviewWithSong
		if err := rows.Scan(
			&rw.Review.ID,
			&rw.Review.ReviewText,
			&rw.Review.Rating,
			&rw.Review.SongID,
			&rw.Review.CreatedAt,
			&rw.Song.ID,
			&rw.Song.Title,
			&rw.Song.Artist,
			&rw.Song.Album,
			&rw.Song.Year,
			&rw.Song.Genre,
			&rw.Song.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListReviews: %w", err)
		}
		reviews = append(reviews, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReviews: %w", err)
	}
	return reviews, nil
}
