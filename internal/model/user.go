package model

import "time"

// Role 值與資料庫 role 欄位的 CHECK 約束一致
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
