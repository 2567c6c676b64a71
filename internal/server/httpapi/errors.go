package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/careerhub/internal/common"
	"github.com/labstack/echo/v4"
)

// errorBody is the JSON shape of every failed request.
type errorBody struct {
	Kind string `json:"kind"`
	Msg  string `json:"msg"`
}

func writeError(c echo.Context, err error) error {
	status, body := classify(err)
	return c.JSON(status, body)
}

func classify(err error) (int, errorBody) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, errorBody{"validation", err.Error()}
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, errorBody{"conflict", "user already exists"}
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, errorBody{"authentication", common.ErrTokenExpired.Error()}
	case errors.Is(err, common.ErrMissingToken),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, errorBody{"authentication", err.Error()}
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, errorBody{"not_found", "user not found"}
	case errors.Is(err, common.ErrTooManyAttempts):
		return http.StatusTooManyRequests, errorBody{"too_many_attempts", err.Error()}
	default:
		return http.StatusInternalServerError, errorBody{"internal", common.ErrorInternal.Error()}
	}
}
