package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
	"github.com/CoreFitApps/gym-scheduler/internal/middleware"
	"github.com/CoreFitApps/gym-scheduler/internal/models"
)

type MessageHandler struct {
	db *gorm.DB
}

func NewMessageHandler(db *gorm.DB) *MessageHandler {
	return &MessageHandler{db: db}
}

type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Body        string `json:"body" binding:"required,max=1000"`
}

func (h *MessageHandler) Send(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	gymID := c.MustGet(middleware.ContextGymID).(uint)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid message payload.")
		return
	}

	// Both parties must belong to the same gym.
	var recipient models.User
	if err := h.db.
		Where("id = ? AND gym_id = ?", req.RecipientID, gymID).
		First(&recipient).Error; err != nil {

		httperr.NotFound(c, "recipient_not_found", "Recipient not found.")
		return
	}

	msg := models.Message{
		SenderID:    userID,
		RecipientID: req.RecipientID,
		Body:        req.Body,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_send_message", "Message was not sent.")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) Conversation(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	otherID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "Invalid user id.")
		return
	}

	var messages []models.Message
	if err := h.db.
		Where(
			"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, otherID, otherID, userID,
		).
		Order("created_at ASC").
		Limit(200).
		Find(&messages).Error; err != nil {

		httperr.Internal(c, "failed_to_list_messages", "Unexpected error.")
		return
	}

	// Everything the other party sent is now read.
	now := time.Now()
	h.db.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND read_at IS NULL", otherID, userID).
		Update("read_at", &now)

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
