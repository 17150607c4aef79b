package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"discnotes/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, _ := HashPassword("pw")
	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(context.Background(), u, "pw"))
	require.Error(t, AuthenticateUser(context.Background(), u, "bad"))
}

func TestNewAuth(t *testing.T) {
	_, err := NewAuth("", time.Hour)
	require.Error(t, err)

	a, err := NewAuth("s3cr3t", 0)
	require.NoError(t, err)
	require.Equal(t, 24*time.Hour, a.ttl)
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	a, err := NewAuth("testsecret", time.Hour)
	require.NoError(t, err)

	user := model.User{ID: 7, Role: model.RoleAdmin}
	tok, expiresAt, err := a.IssueAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := a.VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, 7, claims.UserID)
	require.Equal(t, model.RoleAdmin, claims.Role)
	require.Equal(t, "7", claims.Subject)
}

func TestVerifyAccessTokenRejections(t *testing.T) {
	t.Cleanup(restoreGlobals)
	a, _ := NewAuth("secret-a", time.Hour)
	b, _ := NewAuth("secret-b", time.Hour)

	// 亂碼
	_, err := a.VerifyAccessToken("not-a-token")
	require.Error(t, err)

	// 以其他 secret 簽發
	tok, _, err := b.IssueAccessToken(model.User{ID: 1, Role: model.RoleUser})
	require.NoError(t, err)
	_, err = a.VerifyAccessToken(tok)
	require.Error(t, err)

	// 已過期：將簽發時間撥回 ttl 之前
	timeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := a.IssueAccessToken(model.User{ID: 2, Role: model.RoleUser})
	require.NoError(t, err)
	timeNow = time.Now
	_, err = a.VerifyAccessToken(expired)
	require.Error(t, err)

	// 非 HMAC 簽章演算法
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, CustomClaims{UserID: 3})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = a.VerifyAccessToken(raw)
	require.Error(t, err)
}
