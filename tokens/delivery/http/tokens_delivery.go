package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/mvc"
	"github.com/Apalugobang/tempo-dex/log"
)

// TokensHandler  represent the httphandler for the built-in tokens
type TokensHandler struct {
	TUsecase mvc.TokensUsecase
	logger   log.Logger
}

const (
	tokensResource = "/tokens"
)

func formatTokensResource(resource string) string {
	return tokensResource + resource
}

// NewTokensHandler will initialize the tokens/ resources endpoint
func NewTokensHandler(e *echo.Echo, ts mvc.TokensUsecase, logger log.Logger) {
	handler := &TokensHandler{
		TUsecase: ts,
		logger:   logger,
	}
	e.GET(tokensResource, handler.GetTokens)
	e.GET(formatTokensResource("/:key"), handler.GetToken)
}

// @Summary Built-in tokens
// @Description returns the built-in tokens in display order.
// @Description If keys is given, only the tokens with the given comma-separated keys are returned in the given order.
// @ID get-tokens
// @Produce  json
// @Param  keys  query  string  false  "Comma-separated list of registry keys"
// @Success 200 {array} domain.TokenEntry "Success"
// @Router /tokens [get]
func (a *TokensHandler) GetTokens(c echo.Context) error {
	keysStr := c.QueryParam("keys")
	if len(keysStr) == 0 {
		return c.JSON(http.StatusOK, a.TUsecase.GetTokens())
	}

	keys := strings.Split(keysStr, ",")

	result := make([]domain.TokenEntry, 0, len(keys))
	for _, key := range keys {
		key, err := url.PathUnescape(strings.TrimSpace(key))
		if err != nil {
			return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
		}

		entry, err := a.TUsecase.GetToken(key)
		if err != nil {
			return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
		}

		result = append(result, entry)
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Built-in token
// @Description returns the built-in token for the key. The key may also be the case-insensitive symbol.
// @ID get-token
// @Produce  json
// @Param  key  path  string  true  "Registry key"
// @Success 200 {object} domain.TokenEntry "Success"
// @Router /tokens/{key} [get]
func (a *TokensHandler) GetToken(c echo.Context) error {
	key := c.Param("key")

	entry, err := a.TUsecase.GetToken(key)
	if err != nil {
		a.logger.Debug("token not found", zap.String("key", key))
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, entry)
}
