package store

import (
	"context"
	"fmt"

	"discnotes/internal/database"
	"discnotes/internal/model"
)

// ListSongs 依建立時間由新到舊列出所有歌曲
func ListSongs(ctx context.Context, db database.DB) ([]model.Song, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, artist, album, year, genre, created_at
		 FROM songs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSongs: %w", err)
	}
	defer rows.Close()

	songs := []model.Song{}
	for rows.Next() {
		var s model.Song
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Artist,
			&s.Album,
			&s.Year,
			&s.Genre,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListSongs: %w", err)
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSongs: %w", err)
	}
	return songs, nil
}

func CreateSong(ctx context.Context, db database.DB, s *model.Song) (*model.Song, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO songs (title, artist, album, year, genre)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		s.Title,
		s.Artist,
		s.Album,
		s.Year,
		s.Genre,
	)
	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateSong: %w", err)
	}
	return s, nil
}

// DeleteSong 回傳實際刪除的列數，0 代表 ID 不存在
func DeleteSong(ctx context.Context, db database.DB, songID int) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM songs WHERE id = $1`,
		songID,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteSong: %w", err)
	}
	return tag.RowsAffected(), nil
}
