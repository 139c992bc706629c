package api

import (
	"errors"
	"net/http"

	reqdto "leftoversaver/internal/handler/dto/request"
	"leftoversaver/internal/handler/httperr"
	"leftoversaver/internal/handler/middleware"
	"leftoversaver/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationCommands commands.NotificationCommands
}

func NewNotificationHandler(notificationCommands commands.NotificationCommands) *NotificationHandler {
	return &NotificationHandler{
		notificationCommands: notificationCommands,
	}
}

// @Summary Register device token
// @Description Register the caller's push notification device token
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DeviceTokenRequest true "Device token request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /notifications/token [post]
func (h *NotificationHandler) RegisterDeviceToken(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.DeviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.notificationCommands.RegisterDeviceToken(c.Request.Context(), userID, req.Token); err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyDeviceToken):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Device token required", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
