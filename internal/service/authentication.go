package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"discnotes/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// 測試替換點
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// Auth 簽發與驗證存取令牌，secret 與 ttl 於啟動時注入
type Auth struct {
	secret []byte
	ttl    time.Duration
}

// NewAuth 建立令牌服務；secret 為空視為致命設定錯誤
func NewAuth(secret string, ttl time.Duration) (*Auth, error) {
	if secret == "" {
		return nil, errors.New("jwt secret not set")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Auth{secret: []byte(secret), ttl: ttl}, nil
}

// IssueAccessToken 依據使用者資訊產生 JWT，回傳令牌與到期時間
func (a *Auth) IssueAccessToken(user model.User) (string, time.Time, error) {
	now := timeNow()
	expiresAt := now.Add(a.ttl)
	claims := CustomClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// VerifyAccessToken 驗證並解析 JWT 令牌
// 簽章不符、負載格式錯誤或已過期皆回傳錯誤
func (a *Auth) VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
