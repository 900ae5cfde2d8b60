package handler

import (
	"errors"
	"net/http"

	"betpool/internal/config"
	"betpool/internal/model"
	"betpool/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	bettingService service.BettingService
	seriesService  service.SeriesService
	depositService service.DepositService
	walletService  service.WalletService
	authService    service.AuthService
	webhookSecret  string
	rateLimit      config.RateLimitConfig
	logger         zerolog.Logger
}

func NewHandler(
	bettingService service.BettingService,
	seriesService service.SeriesService,
	depositService service.DepositService,
	walletService service.WalletService,
	authService service.AuthService,
	webhookSecret string,
	rateLimit config.RateLimitConfig,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		bettingService: bettingService,
		seriesService:  seriesService,
		depositService: depositService,
		walletService:  walletService,
		authService:    authService,
		webhookSecret:  webhookSecret,
		rateLimit:      rateLimit,
		logger:         logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Provider webhook authenticates with a shared secret, not a session
	v1.POST("/webhooks/payments", h.PaymentWebhook)

	limiter := NewRateLimitMiddleware(h.rateLimit)

	authed := v1.Group("", h.AuthMiddleware())

	bets := authed.Group("/bets")
	bets.POST("", limiter, h.PlaceBet)

	series := authed.Group("/series")
	series.GET("/:id/bets", h.GetBetsBySeries)

	admin := authed.Group("", h.RequireAdmin())
	admin.POST("/matches", h.CreateMatch)
	admin.POST("/series/:id/release", h.ReleaseSeries)
	admin.POST("/series/:id/start", h.StartSeries)
	admin.POST("/series/:id/finish", h.FinishSeries)
	admin.POST("/series/:id/cancel", h.CancelSeries)

	deposits := authed.Group("/deposits")
	deposits.POST("", limiter, h.CreateDeposit)

	transactions := authed.Group("/transactions")
	transactions.GET("/:id", h.GetTransaction)

	wallet := authed.Group("/wallet")
	wallet.GET("", h.GetBalance)
	wallet.GET("/transactions", h.GetStatement)
	wallet.POST("/withdrawals", limiter, h.Withdraw)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
		code = "VALIDATION_ERROR"
	case errors.Is(err, model.ErrInvalidState):
		status = http.StatusConflict
		code = "INVALID_STATE"
	case errors.Is(err, model.ErrInsufficientBalance):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_BALANCE"
	case errors.Is(err, model.ErrBelowMinimum):
		status = http.StatusBadRequest
		code = "BELOW_MINIMUM"
	case errors.Is(err, model.ErrExpired):
		status = http.StatusGone
		code = "EXPIRED"
	case errors.Is(err, model.ErrConcurrencyConflict):
		status = http.StatusConflict
		code = "CONCURRENCY_CONFLICT"
		resp.Details = "Lost a race for the series, retry the request"
	case errors.Is(err, model.ErrDuplicateTransaction):
		status = http.StatusConflict
		code = "DUPLICATE_TRANSACTION"
	case errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "UNAUTHORIZED"
	case errors.Is(err, model.ErrForbidden):
		status = http.StatusForbidden
		code = "FORBIDDEN"
	case errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrWalletNotFound),
		errors.Is(err, model.ErrMatchNotFound),
		errors.Is(err, model.ErrSeriesNotFound),
		errors.Is(err, model.ErrBetNotFound),
		errors.Is(err, model.ErrTransactionNotFound),
		errors.Is(err, model.ErrInfluencerNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
