package handler

import (
	"net/http"
	"strconv"

	"betpool/internal/model"

	"github.com/gin-gonic/gin"
)

// GetBalance
// @Summary Get wallet balance
// @Description Returns the authenticated user's available and blocked balances
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Router /wallet [get]
func (h *Handler) GetBalance(c *gin.Context) {
	user := currentUser(c)

	resp, err := h.walletService.GetBalance(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStatement
// @Summary Get wallet statement
// @Description Returns a paginated list of the user's ledger entries
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Router /wallet/transactions [get]
func (h *Handler) GetStatement(c *gin.Context) {
	user := currentUser(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.walletService.GetStatement(c.Request.Context(), user.ID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        limit,
		Offset:       offset,
	})
}

// Withdraw
// @Summary Withdraw funds
// @Description Debits the available balance; blocked funds cannot be withdrawn
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param withdrawal body model.WithdrawRequest true "Amount in minor units"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} model.ErrorResponse "Insufficient balance"
// @Router /wallet/withdrawals [post]
func (h *Handler) Withdraw(c *gin.Context) {
	user := currentUser(c)

	var req model.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	trans, err := h.walletService.Withdraw(c.Request.Context(), user.ID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trans)
}
