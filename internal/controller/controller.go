package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tms/internal/apperror"
	"github.com/lshigami/tms/internal/dto"
	"github.com/rs/zerolog/log"
)

// ParseID reads a numeric path parameter. On failure it writes a 400 and returns false.
func ParseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		log.Warn().Err(err).Str("param", name).Str("value", raw).Msg("Invalid ID in path")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// BindJSON binds the request body into req. On failure it writes a 400 and returns false.
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request body")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// RespondError maps not-found errors to 404, conflicts to 409 and anything
// else to 500 with msg.
func RespondError(c *gin.Context, err error, msg string) {
	var nf *apperror.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: nf.Error()})
		return
	}
	var conflict *apperror.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: conflict.Error()})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg(msg)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
}
