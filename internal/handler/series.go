package handler

import (
	"context"
	"net/http"

	"betpool/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateMatch
// @Summary Create a match
// @Description Creates a match between two players together with its numbered series
// @Tags series
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param match body model.CreateMatchRequest true "Match details"
// @Success 201 {object} model.Match
// @Failure 400 {object} model.ErrorResponse
// @Router /matches [post]
func (h *Handler) CreateMatch(c *gin.Context) {
	var req model.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	match, err := h.seriesService.CreateMatch(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// ReleaseSeries
// @Summary Release a series
// @Description Opens the betting window: pending -> released
// @Tags series
// @Produce json
// @Security BearerAuth
// @Param id path int true "Series ID"
// @Success 200 {object} model.Series
// @Failure 409 {object} model.ErrorResponse "Illegal state transition"
// @Router /series/{id}/release [post]
func (h *Handler) ReleaseSeries(c *gin.Context) {
	h.seriesTransition(c, h.seriesService.Release)
}

// StartSeries
// @Summary Start a series
// @Description Closes the betting window: released -> in_progress
// @Tags series
// @Produce json
// @Security BearerAuth
// @Param id path int true "Series ID"
// @Success 200 {object} model.Series
// @Failure 409 {object} model.ErrorResponse "Illegal state transition"
// @Router /series/{id}/start [post]
func (h *Handler) StartSeries(c *gin.Context) {
	h.seriesTransition(c, h.seriesService.Start)
}

// CancelSeries
// @Summary Cancel a series
// @Description Cancels the series and refunds every bet's full stake
// @Tags series
// @Produce json
// @Security BearerAuth
// @Param id path int true "Series ID"
// @Success 200 {object} model.Series
// @Failure 409 {object} model.ErrorResponse "Illegal state transition"
// @Router /series/{id}/cancel [post]
func (h *Handler) CancelSeries(c *gin.Context) {
	h.seriesTransition(c, h.seriesService.Cancel)
}

// FinishSeries
// @Summary Finish a series
// @Description Records the result and settles payouts, refunds and commission atomically
// @Tags series
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Series ID"
// @Param result body model.FinishSeriesRequest true "Winner and scores"
// @Success 200 {object} model.Series
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse "Illegal state transition"
// @Router /series/{id}/finish [post]
func (h *Handler) FinishSeries(c *gin.Context) {
	seriesID, err := parseIDParam(c)
	if err != nil {
		h.handleError(c, model.ErrSeriesNotFound)
		return
	}

	var req model.FinishSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	series, err := h.seriesService.Finish(c.Request.Context(), seriesID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

func (h *Handler) seriesTransition(c *gin.Context, fn func(ctx context.Context, seriesID int64) (*model.Series, error)) {
	seriesID, err := parseIDParam(c)
	if err != nil {
		h.handleError(c, model.ErrSeriesNotFound)
		return
	}

	series, err := fn(c.Request.Context(), seriesID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}
