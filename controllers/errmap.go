package controllers

import (
	"errors"

	"grillpos/pkg/apperr"
	"grillpos/pkg/resp"

	"github.com/gin-gonic/gin"
)

// writeErr maps core error kinds onto HTTP statuses: validation 400, not
// found 404, stock/transition conflicts 409. Anything else is a 500.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, apperr.ErrInsufficientStock), errors.Is(err, apperr.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
