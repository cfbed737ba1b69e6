package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/EduSync/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError maps service errors to HTTP statuses via their marker methods.
// Anything without a marker is a 500 and gets logged.
func RespondError(ctx *gin.Context, err error) {
	switch err.(type) {
	case interface{ NotFound() }:
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case interface{ PermissionDenied() }:
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case interface{ InvalidState() }:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case interface{ AlreadyCompleted() }:
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case interface{ NoActiveAttempt() }:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case interface{ Conflict() }:
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}

// ParseUUIDParam binds a :param path segment as a UUID, writing the 400 itself.
func ParseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}
