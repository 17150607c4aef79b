package router

import (
	"net/http"
	"testing"
	"time"

	"discnotes/internal/cache"
	"discnotes/internal/database"
	"discnotes/internal/service"
	"discnotes/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	authSvc, err := service.NewAuth("testsecret", time.Hour)
	require.NoError(t, err)

	wp := worker.NewPool(1)
	defer wp.Stop()

	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, authSvc, wp)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/songs",
		http.MethodPost + " /api/songs",
		http.MethodDelete + " /api/songs/:id",
		http.MethodPost + " /api/reviews",
		http.MethodGet + " /api/reviews",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
