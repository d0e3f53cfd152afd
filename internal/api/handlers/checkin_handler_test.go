package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karakusgokhan/team-hub/internal/api/middleware"
	"github.com/karakusgokhan/team-hub/internal/domain/checkin"
	"github.com/karakusgokhan/team-hub/internal/domain/notice"
	"github.com/karakusgokhan/team-hub/pkg/logger"
)

func newCheckInRouter(seed []checkin.CheckIn) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := checkin.NewService(nil, notice.NewBoard(10), logger.New("error", "console"), 0, seed)
	h := NewCheckInHandler(svc)
	cacheMw := middleware.NewCacheMiddleware(nil, "teamhub", time.Minute)

	router := gin.New()
	router.Use(middleware.CurrentUser("Gökhan"))
	group := router.Group("/api/checkins")
	group.GET("", cacheMw.CacheResponse(), h.ListCheckIns)
	group.POST("", cacheMw.CacheInvalidate("checkins:*"), h.CreateCheckIn)
	return router
}

func TestListCheckInsByDate(t *testing.T) {
	router := newCheckInRouter([]checkin.CheckIn{
		{ID: "c1", Person: "Esra", Status: checkin.StatusOffice, Date: "2026-02-23", Time: "09:00"},
		{ID: "c2", Person: "Seda", Status: checkin.StatusRemote, Date: "2026-02-22", Time: "09:10"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/checkins?date=2026-02-23", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []checkin.CheckIn `json:"data"`
		Date string            `json:"date"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-02-23", body.Date)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Esra", body.Data[0].Person)
}

func TestListCheckInsRejectsBadDate(t *testing.T) {
	router := newCheckInRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/checkins?date=23-02-2026", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid date")
}

func TestCreateCheckInDefaultsPersonFromHeader(t *testing.T) {
	router := newCheckInRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkins",
		strings.NewReader(`{"status":"remote","date":"2026-02-23"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.UserHeader, "Leyla")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Data checkin.CheckIn `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Leyla", body.Data.Person)
	assert.Equal(t, checkin.StatusRemote, body.Data.Status)
}

func TestCreateCheckInFallsBackToConfiguredUser(t *testing.T) {
	router := newCheckInRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkins",
		strings.NewReader(`{"status":"office"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Data checkin.CheckIn `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Gökhan", body.Data.Person)
}

func TestCreateCheckInRejectsBadStatus(t *testing.T) {
	router := newCheckInRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkins",
		strings.NewReader(`{"status":"commuting"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
