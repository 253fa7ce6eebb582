package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/coursehive/internal/apperror"
	"github.com/lshigami/coursehive/internal/dto"
	"github.com/lshigami/coursehive/internal/middleware"
	"github.com/rs/zerolog/log"
)

// RespondError maps err to its HTTP status. Unexpected errors are logged and
// reach the caller only as a generic message.
func RespondError(ctx *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("method", ctx.Request.Method).Str("path", ctx.FullPath()).Msg("Request failed")
	}
	ctx.JSON(status, dto.ErrorResponse{Success: false, Message: apperror.PublicMessage(err)})
}

func RespondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Message: message})
}

// CallerID returns the authenticated caller id, or writes a 401 and returns
// false.
func CallerID(ctx *gin.Context) (string, bool) {
	identity, ok := middleware.CurrentIdentity(ctx)
	if !ok || identity.ID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Message: "Unauthorized!"})
		return "", false
	}
	return identity.ID, true
}

// PathID reads a uuid path parameter, writing a 400 when it is malformed.
func PathID(ctx *gin.Context, name, label string) (string, bool) {
	raw := ctx.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		RespondBadRequest(ctx, "Invalid "+label+" ID format")
		return "", false
	}
	return raw, true
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "ok"})
}
