package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"discnotes/internal/database"
	"discnotes/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeReviewRow struct {
	scanErr error
	id      int
	created time.Time
}

func (r *fakeReviewRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*dest[0].(*int) = r.id
	*dest[1].(*time.Time) = r.created
	return nil
}

// fakeReviewRows 實作 pgx.Rows，回傳 review + song 的 join 結果
type fakeReviewRows struct {
	rows    []ReviewWithSong
	idx     int
	scanErr error
	rowsErr error
}

func (r *fakeReviewRows) Close()                                       {}
func (r *fakeReviewRows) Err() error                                   { return r.rowsErr }
func (r *fakeReviewRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeReviewRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeReviewRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeReviewRows) RawValues() [][]byte                          { return nil }
func (r *fakeReviewRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeReviewRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeReviewRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	rw := r.rows[r.idx-1]
	*dest[0].(*int) = rw.Review.ID
	*dest[1].(*string) = rw.Review.ReviewText
	*dest[2].(**int) = rw.Review.Rating
	*dest[3].(*int) = rw.Review.SongID
	*dest[4].(*time.Time) = rw.Review.CreatedAt
	*dest[5].(*int) = rw.Song.ID
	*dest[6].(*string) = rw.Song.Title
	*dest[7].(*string) = rw.Song.Artist
	*dest[8].(**string) = rw.Song.Album
	*dest[9].(**int) = rw.Song.Year
	*dest[10].(**string) = rw.Song.Genre
	*dest[11].(*time.Time) = rw.Song.CreatedAt
	return nil
}

func TestCreateReview(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeReviewRow{id: 11, created: now}
			},
		}
		rating := 4
		r, err := CreateReview(context.Background(), db, &model.Review{ReviewText: "great", Rating: &rating, SongID: 3})
		require.NoError(t, err)
		require.Equal(t, 11, r.ID)
		require.Equal(t, now, r.CreatedAt)
	})

	t.Run("fk violation", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeReviewRow{scanErr: &pgconn.PgError{Code: "23503"}}
			},
		}
		r, err := CreateReview(context.Background(), db, &model.Review{ReviewText: "x", SongID: 999})
		require.Error(t, err)
		require.Nil(t, r)

		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		require.Equal(t, "23503", pgErr.Code)
	})
}

func TestListReviews(t *testing.T) {
	now := time.Now().UTC()
	rating := 5
	sample := []ReviewWithSong{
		{
			Review: model.Review{ID: 2, ReviewText: "masterpiece", Rating: &rating, SongID: 1, CreatedAt: now},
			Song:   model.Song{ID: 1, Title: "Teardrop", Artist: "Massive Attack", CreatedAt: now.Add(-time.Hour)},
		},
		{
			Review: model.Review{ID: 1, ReviewText: "solid", SongID: 1, CreatedAt: now.Add(-time.Minute)},
			Song:   model.Song{ID: 1, Title: "Teardrop", Artist: "Massive Attack", CreatedAt: now.Add(-time.Hour)},
		},
	}

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeReviewRows{rows: sample}, nil
			},
		}
		reviews, err := ListReviews(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		require.Equal(t, "masterpiece", reviews[0].Review.ReviewText)
		require.Equal(t, 5, *reviews[0].Review.Rating)
		require.Nil(t, reviews[1].Review.Rating)
		require.Equal(t, "Teardrop", reviews[0].Song.Title)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := ListReviews(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeReviewRows{rows: sample, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListReviews(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeReviewRows{rowsErr: errors.New("rows")}, nil
			},
		}
		_, err := ListReviews(context.Background(), db)
		require.Error(t, err)
	})
}
