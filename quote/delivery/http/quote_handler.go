package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
	"github.com/Apalugobang/tempo-dex/log"
)

// QuoteHandler  represent the httphandler for quotes
type QuoteHandler struct {
	QUsecase mvc.QuoteUsecase

	defaultSlippagePercent string
	logger                 log.Logger
}

// QuoteResponse is the response of the quote endpoint.
// Quote is nil if the amount does not produce a quote.
type QuoteResponse struct {
	Amount string            `json:"amount"`
	Quote  *domain.QuoteView `json:"quote"`
}

// NewQuoteHandler will initialize the quote/ resources endpoint
func NewQuoteHandler(e *echo.Echo, us mvc.QuoteUsecase, defaultSlippagePercent string, logger log.Logger) {
	handler := &QuoteHandler{
		QUsecase:               us,
		defaultSlippagePercent: defaultSlippagePercent,
		logger:                 logger,
	}
	e.GET("/quote", handler.GetQuote)
}

// @Summary Stateless quote
// @Description returns the flat-fee quote for the given amount and slippage percentage.
// @Description The quote is null if the amount is empty, not a number or not positive.
// @ID get-quote
// @Produce  json
// @Param  amount  query  string  true  "Input amount"
// @Param  slippage  query  string  false  "Slippage tolerance in percent, e.g. 0.5"
// @Success 200 {object} QuoteResponse "Success"
// @Router /quote [get]
func (a *QuoteHandler) GetQuote(c echo.Context) error {
	amount := c.QueryParam("amount")

	slippagePercent := c.QueryParam("slippage")
	if slippagePercent == "" {
		slippagePercent = a.defaultSlippagePercent
	}

	slippage, err := domain.ParseSlippagePercent(slippagePercent)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	quote, ok, err := a.QUsecase.GetQuote(amount, slippage)
	if err != nil {
		a.logger.Error("failed to compute quote", zap.String("amount", amount), zap.Error(err))
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	response := QuoteResponse{Amount: amount}
	if ok {
		view := quote.View()
		response.Quote = &view
	}

	return c.JSON(http.StatusOK, response)
}
