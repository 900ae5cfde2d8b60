package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"betpool/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandler_CreateMatch_Created(t *testing.T) {
	h, _, mockSeries, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/matches", asUser(&model.User{ID: 1, Role: model.RoleAdmin}), h.RequireAdmin(), h.CreateMatch)

	mockSeries.On("CreateMatch", mock.Anything, mock.MatchedBy(func(req *model.CreateMatchRequest) bool {
		return req.Player1ID == 3 && req.Player2ID == 4 && req.TotalSeries == 5
	})).Return(&model.Match{
		ID:          7,
		Player1ID:   3,
		Player2ID:   4,
		TotalSeries: 5,
	}, nil)

	body, _ := json.Marshal(model.CreateMatchRequest{
		Player1ID:   3,
		Player2ID:   4,
		TotalSeries: 5,
		ScheduledAt: time.Now().Add(time.Hour),
	})
	req, _ := http.NewRequest(http.MethodPost, "/matches", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.Match
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, int64(7), resp.ID)
}

func TestHandler_CreateMatch_RequiresAdmin(t *testing.T) {
	h, _, mockSeries, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/matches", asUser(&model.User{ID: 1, Role: model.RoleUser}), h.RequireAdmin(), h.CreateMatch)

	body, _ := json.Marshal(model.CreateMatchRequest{
		Player1ID:   3,
		Player2ID:   4,
		TotalSeries: 5,
		ScheduledAt: time.Now().Add(time.Hour),
	})
	req, _ := http.NewRequest(http.MethodPost, "/matches", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "FORBIDDEN", resp.Code)
	mockSeries.AssertNotCalled(t, "CreateMatch")
}

func TestHandler_ReleaseSeries_OK(t *testing.T) {
	h, _, mockSeries, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/series/:id/release", asUser(&model.User{ID: 1, Role: model.RoleAdmin}), h.RequireAdmin(), h.ReleaseSeries)

	mockSeries.On("Release", mock.Anything, int64(12)).Return(&model.Series{
		ID:      12,
		MatchID: 7,
		State:   model.SeriesReleased,
	}, nil)

	req, _ := http.NewRequest(http.MethodPost, "/series/12/release", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.Series
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, model.SeriesReleased, resp.State)
}

func TestHandler_StartSeries_Conflict(t *testing.T) {
	h, _, mockSeries, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/series/:id/start", asUser(&model.User{ID: 1, Role: model.RoleAdmin}), h.RequireAdmin(), h.StartSeries)

	mockSeries.On("Start", mock.Anything, int64(12)).Return(nil, model.ErrInvalidState)

	req, _ := http.NewRequest(http.MethodPost, "/series/12/start", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INVALID_STATE", resp.Code)
}

func TestHandler_FinishSeries_OK(t *testing.T) {
	h, _, mockSeries, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/series/:id/finish", asUser(&model.User{ID: 1, Role: model.RoleAdmin}), h.RequireAdmin(), h.FinishSeries)

	winner := int64(3)
	mockSeries.On("Finish", mock.Anything, int64(12), mock.MatchedBy(func(req *model.FinishSeriesRequest) bool {
		return req.WinnerPlayerID == 3 && req.Player1Score == 2 && req.Player2Score == 1
	})).Return(&model.Series{
		ID:             12,
		MatchID:        7,
		State:          model.SeriesSettled,
		WinnerPlayerID: &winner,
	}, nil)

	body, _ := json.Marshal(model.FinishSeriesRequest{WinnerPlayerID: 3, Player1Score: 2, Player2Score: 1})
	req, _ := http.NewRequest(http.MethodPost, "/series/12/finish", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.Series
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, model.SeriesSettled, resp.State)
}

func TestHandler_CancelSeries_OK(t *testing.T) {
	h, _, mockSeries, _, _, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/series/:id/cancel", asUser(&model.User{ID: 1, Role: model.RoleAdmin}), h.RequireAdmin(), h.CancelSeries)

	mockSeries.On("Cancel", mock.Anything, int64(12)).Return(&model.Series{
		ID:      12,
		MatchID: 7,
		State:   model.SeriesCancelled,
	}, nil)

	req, _ := http.NewRequest(http.MethodPost, "/series/12/cancel", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.Series
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, model.SeriesCancelled, resp.State)
}
