package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
	"github.com/Apalugobang/tempo-dex/log"
)

// SessionHandler  represent the httphandler for exchange sessions
type SessionHandler struct {
	SUsecase mvc.SessionUsecase
	logger   log.Logger
}

// AmountRequest is the body of the amount and liquidity endpoints.
type AmountRequest struct {
	Amount string `json:"amount"`
}

// SelectTokensRequest is the body of the token pair selection endpoint.
type SelectTokensRequest struct {
	FromKey string `json:"from_key"`
	ToKey   string `json:"to_key"`
}

// ConfirmationRequest is the optional body of the confirm and reject endpoints.
// An empty confirmation id refers to the current pending confirmation.
type ConfirmationRequest struct {
	ConfirmationID string `json:"confirmation_id"`
}

// ImportTokenRequest is the body of the token import endpoint.
type ImportTokenRequest struct {
	Address string `json:"address"`
}

const (
	sessionsResource = "/sessions"
	sessionIDParam   = "id"
)

func formatSessionResource(resource string) string {
	return sessionsResource + "/:" + sessionIDParam + resource
}

// NewSessionHandler will initialize the sessions/ resources endpoint
func NewSessionHandler(e *echo.Echo, us mvc.SessionUsecase, logger log.Logger) {
	handler := &SessionHandler{
		SUsecase: us,
		logger:   logger,
	}
	e.POST(sessionsResource, handler.CreateSession)
	e.GET(formatSessionResource(""), handler.GetSession)
	e.DELETE(formatSessionResource(""), handler.DeleteSession)

	e.POST(formatSessionResource("/wallet/connect"), handler.Connect)
	e.POST(formatSessionResource("/wallet/disconnect"), handler.Disconnect)

	e.PUT(formatSessionResource("/settings"), handler.UpdateSettings)

	e.PUT(formatSessionResource("/swap/amount"), handler.SetFromAmount)
	e.PUT(formatSessionResource("/swap/tokens"), handler.SelectTokens)
	e.POST(formatSessionResource("/swap/switch"), handler.SwitchTokens)
	e.POST(formatSessionResource("/swap"), handler.RequestSwap)
	e.POST(formatSessionResource("/swap/confirm"), handler.ConfirmSwap)
	e.POST(formatSessionResource("/swap/reject"), handler.RejectSwap)

	e.POST(formatSessionResource("/liquidity/add"), handler.AddLiquidity)
	e.POST(formatSessionResource("/liquidity/remove"), handler.RemoveLiquidity)

	e.GET(formatSessionResource("/transactions"), handler.GetTransactions)
	e.GET(formatSessionResource("/tokens"), handler.GetTokens)
	e.POST(formatSessionResource("/tokens/import"), handler.ImportToken)
}

// @Summary Create session
// @Description creates a new exchange session with a disconnected wallet and the default settings.
// @ID create-session
// @Produce  json
// @Success 201 {object} domain.SessionSnapshot "Created"
// @Router /sessions [post]
func (a *SessionHandler) CreateSession(c echo.Context) error {
	snapshot, err := a.SUsecase.CreateSession(c.Request().Context())
	if err != nil {
		return a.respondError(c, "create session", err)
	}

	return c.JSON(http.StatusCreated, snapshot)
}

// @Summary Get session
// @Description returns the full session view.
// @ID get-session
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Success 200 {object} domain.SessionSnapshot "Success"
// @Router /sessions/{id} [get]
func (a *SessionHandler) GetSession(c echo.Context) error {
	snapshot, err := a.SUsecase.GetSession(c.Request().Context(), c.Param(sessionIDParam))
	if err != nil {
		return a.respondError(c, "get session", err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// @Summary Delete session
// @ID delete-session
// @Param  id  path  string  true  "Session id"
// @Success 204 "No Content"
// @Router /sessions/{id} [delete]
func (a *SessionHandler) DeleteSession(c echo.Context) error {
	if err := a.SUsecase.DeleteSession(c.Request().Context(), c.Param(sessionIDParam)); err != nil {
		return a.respondError(c, "delete session", err)
	}

	return c.NoContent(http.StatusNoContent)
}

// @Summary Connect wallet
// @Description connects the session wallet. If the configured provider is absent and simulation
// @Description fallback is enabled, a simulated identity is returned.
// @ID connect-wallet
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Success 200 {object} domain.SessionSnapshot "Success"
// @Router /sessions/{id}/wallet/connect [post]
func (a *SessionHandler) Connect(c echo.Context) error {
	snapshot, err := a.SUsecase.Connect(c.Request().Context(), c.Param(sessionIDParam))
	if err != nil {
		return a.respondError(c, "connect", err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// @Summary Disconnect wallet
// @Description clears the identity, resets the LP balance display and drops any pending confirmation.
// @ID disconnect-wallet
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Success 200 {object} domain.SessionSnapshot "Success"
// @Router /sessions/{id}/wallet/disconnect [post]
func (a *SessionHandler) Disconnect(c echo.Context) error {
	snapshot, err := a.SUsecase.Disconnect(c.Request().Context(), c.Param(sessionIDParam))
	if err != nil {
		return a.respondError(c, "disconnect", err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// @Summary Update settings
// @Description updates the slippage preset, custom slippage and deadline. Omitted fields are unchanged.
// @ID update-settings
// @Accept  json
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Param  settings  body  domain.SettingsUpdate  true  "Settings update"
// @Success 200 {object} domain.SessionSnapshot "Success"
// @Router /sessions/{id}/settings [put]
func (a *SessionHandler) UpdateSettings(c echo.Context) error {
	var update domain.SettingsUpdate
	if err := bind(c, &update); err != nil {
		return a.respondError(c, "update settings", err)
	}

	snapshot, err := a.SUsecase.UpdateSettings(c.Request().Context(), c.Param(sessionIDParam), update)
	if err != nil {
		return a.respondError(c, "update settings", err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// @Summary Set swap amount
// @Description stores the raw input amount and recomputes the quote.
// @ID set-swap-amount
// @Accept  json
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Param  amount  body  AmountRequest  true  "Input amount"
// @Success 200 {object} domain.SessionSnapshot "Success"
// @Router /sessions/{id}/swap/amount [put]
func (a *SessionHandler) SetFromAmount(c echo.Context) error {
	var req AmountRequest
	if err := bind(c, &req); err != nil {
		return a.respondError(c, "set amount", err)
	}

	snapshot, err := a.SUsecase.SetFromAmount(c.Request().Context(), c.Param(sessionIDParam), req.Amount)
	if err != nil {
		return a.respondError(c, "set amount", err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// @Summary Select swap tokens
// @ID select-swap-tokens
// @Accept  json
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Param  tokens  body  SelectTokensRequest  true  "Token pair"
// @Success 200 {object} domain.SessionSnapshot "Success"
// @Router /sessions/{id}/swap/tokens [put]
func (a *SessionHandler) SelectTokens(c echo.Context) error {
	var req SelectTokensRequest
	if err := bind(c, &req); err != nil {
		return a.respondError(c, "select tokens", err)
	}

	snapshot, err := a.SUsecase.SelectTokens(c.Request().Context(), c.Param(sessionIDParam), req.FromKey, req.ToKey)
	if err != nil {
		return a.respondError(c, "select tokens", err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// @Summary Switch swap tokens
// @Description swaps the pair and moves the previous output into the input.
// @ID switch-swap-tokens
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Success 200 {object} domain.SessionSnapshot "Success"
// @Router /sessions/{id}/swap/switch [post]
func (a *SessionHandler) SwitchTokens(c echo.Context) error {
	snapshot, err := a.SUsecase.SwitchTokens(c.Request().Context(), c.Param(sessionIDParam))
	if err != nil {
		return a.respondError(c, "switch tokens", err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// @Summary Request swap
// @Description starts the swap flow. Without a connected wallet, the wallet is connected instead
// @Description and the outcome is connect_required. Otherwise a pending confirmation is returned.
// @ID request-swap
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Success 200 {object} domain.SwapResult "Success"
// @Router /sessions/{id}/swap [post]
func (a *SessionHandler) RequestSwap(c echo.Context) error {
	result, err := a.SUsecase.RequestSwap(c.Request().Context(), c.Param(sessionIDParam))
	if err != nil {
		return a.respondError(c, "request swap", err)
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Confirm swap
// @ID confirm-swap
// @Accept  json
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Param  confirmation  body  ConfirmationRequest  false  "Confirmation"
// @Success 200 {object} domain.SwapResult "Success"
// @Router /sessions/{id}/swap/confirm [post]
func (a *SessionHandler) ConfirmSwap(c echo.Context) error {
	var req ConfirmationRequest
	if err := bind(c, &req); err != nil {
		return a.respondError(c, "confirm swap", err)
	}

	result, err := a.SUsecase.ConfirmSwap(c.Request().Context(), c.Param(sessionIDParam), req.ConfirmationID)
	if err != nil {
		return a.respondError(c, "confirm swap", err)
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Reject swap
// @ID reject-swap
// @Accept  json
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Param  confirmation  body  ConfirmationRequest  false  "Confirmation"
// @Success 200 {object} domain.SwapResult "Success"
// @Router /sessions/{id}/swap/reject [post]
func (a *SessionHandler) RejectSwap(c echo.Context) error {
	var req ConfirmationRequest
	if err := bind(c, &req); err != nil {
		return a.respondError(c, "reject swap", err)
	}

	result, err := a.SUsecase.RejectSwap(c.Request().Context(), c.Param(sessionIDParam), req.ConfirmationID)
	if err != nil {
		return a.respondError(c, "reject swap", err)
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Add liquidity
// @ID add-liquidity
// @Accept  json
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Param  amount  body  AmountRequest  true  "LP amount"
// @Success 200 {object} domain.LiquidityResult "Success"
// @Router /sessions/{id}/liquidity/add [post]
func (a *SessionHandler) AddLiquidity(c echo.Context) error {
	var req AmountRequest
	if err := bind(c, &req); err != nil {
		return a.respondError(c, "add liquidity", err)
	}

	result, err := a.SUsecase.AddLiquidity(c.Request().Context(), c.Param(sessionIDParam), req.Amount)
	if err != nil {
		return a.respondError(c, "add liquidity", err)
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Remove liquidity
// @ID remove-liquidity
// @Accept  json
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Param  amount  body  AmountRequest  true  "LP amount"
// @Success 200 {object} domain.LiquidityResult "Success"
// @Router /sessions/{id}/liquidity/remove [post]
func (a *SessionHandler) RemoveLiquidity(c echo.Context) error {
	var req AmountRequest
	if err := bind(c, &req); err != nil {
		return a.respondError(c, "remove liquidity", err)
	}

	result, err := a.SUsecase.RemoveLiquidity(c.Request().Context(), c.Param(sessionIDParam), req.Amount)
	if err != nil {
		return a.respondError(c, "remove liquidity", err)
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Transaction history
// @Description returns the session transactions, newest first.
// @ID get-transactions
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Success 200 {array} domain.Transaction "Success"
// @Router /sessions/{id}/transactions [get]
func (a *SessionHandler) GetTransactions(c echo.Context) error {
	transactions, err := a.SUsecase.GetTransactions(c.Request().Context(), c.Param(sessionIDParam))
	if err != nil {
		return a.respondError(c, "get transactions", err)
	}

	return c.JSON(http.StatusOK, transactions)
}

// @Summary Session tokens
// @Description returns the built-in tokens followed by the tokens imported in this session.
// @ID get-session-tokens
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Success 200 {array} domain.TokenEntry "Success"
// @Router /sessions/{id}/tokens [get]
func (a *SessionHandler) GetTokens(c echo.Context) error {
	tokens, err := a.SUsecase.GetTokens(c.Request().Context(), c.Param(sessionIDParam))
	if err != nil {
		return a.respondError(c, "get tokens", err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// @Summary Import token
// @Description imports a token by address under a generated CUSTOM symbol.
// @ID import-token
// @Accept  json
// @Produce  json
// @Param  id  path  string  true  "Session id"
// @Param  token  body  ImportTokenRequest  true  "Token address"
// @Success 200 {object} domain.TokenEntry "Success"
// @Router /sessions/{id}/tokens/import [post]
func (a *SessionHandler) ImportToken(c echo.Context) error {
	var req ImportTokenRequest
	if err := bind(c, &req); err != nil {
		return a.respondError(c, "import token", err)
	}

	entry, err := a.SUsecase.ImportToken(c.Request().Context(), c.Param(sessionIDParam), req.Address)
	if err != nil {
		return a.respondError(c, "import token", err)
	}

	return c.JSON(http.StatusOK, entry)
}

func (a *SessionHandler) respondError(c echo.Context, action string, err error) error {
	statusCode := domain.GetStatusCode(err)
	if statusCode >= http.StatusInternalServerError {
		a.logger.Error("session action failed", zap.String("action", action), zap.String("session_id", c.Param(sessionIDParam)), zap.Error(err))
	}

	return c.JSON(statusCode, domain.ResponseError{Message: err.Error()})
}

// bind decodes the request body. An empty body leaves the target unchanged.
func bind(c echo.Context, target any) error {
	if c.Request().ContentLength == 0 {
		return nil
	}

	if err := (&echo.DefaultBinder{}).BindBody(c, target); err != nil {
		return domain.ValidationError{Field: "body", Reason: "request body is not valid JSON"}
	}

	return nil
}
