package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fieldplay/fieldplay-api/internal/httperr"
	"github.com/fieldplay/fieldplay-api/internal/logger"
	"github.com/fieldplay/fieldplay-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	var notifications []models.Notification
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(100).
		Find(&notifications).Error; err != nil {

		logger.Log.WithError(err).Error("notification list failed")
		httperr.Internal(c, "failed_to_list_notifications", "Failed to fetch notifications.")
		return
	}

	var unread int64
	h.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	// Scoped to the caller so one user cannot touch another's notifications.
	res := h.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, currentUserID(c)).
		Update("is_read", true)

	if res.Error != nil {
		logger.Log.WithError(res.Error).Error("notification update failed")
		httperr.Internal(c, "failed_to_update_notification", "Failed to update notification.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
