package handler

import (
	"net/http"
	"strconv"

	"betpool/internal/model"

	"github.com/gin-gonic/gin"
)

// PlaceBet
// @Summary Place a bet
// @Description Places a wager on one side of a released series and matches it FIFO against the opposing pool
// @Tags bets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bet body model.PlaceBetRequest true "Bet details"
// @Success 201 {object} model.BetResponse
// @Failure 400 {object} model.ErrorResponse "Validation, minimum or balance error"
// @Failure 409 {object} model.ErrorResponse "Series not open for betting"
// @Router /bets [post]
func (h *Handler) PlaceBet(c *gin.Context) {
	user := currentUser(c)

	var req model.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.bettingService.PlaceBet(c.Request.Context(), user.ID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetBetsBySeries
// @Summary Get bets of a series
// @Description Returns the series' bets grouped by backed player, with matched and remaining amounts
// @Tags bets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Series ID"
// @Success 200 {object} model.SeriesBetsResponse
// @Failure 404 {object} model.ErrorResponse "Series not found"
// @Router /series/{id}/bets [get]
func (h *Handler) GetBetsBySeries(c *gin.Context) {
	seriesID, err := parseIDParam(c)
	if err != nil {
		h.handleError(c, model.ErrSeriesNotFound)
		return
	}

	resp, err := h.bettingService.GetBetsBySeries(c.Request.Context(), seriesID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
