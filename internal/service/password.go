package service

import (
	"context"
	"errors"

	"discnotes/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// 測試替換點
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// AuthenticateUser 驗證使用者明文密碼
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}
