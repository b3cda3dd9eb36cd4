package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jockyhq/booking-api/internal/repository"
)

// MessageHandler bundles repositories for user-to-user messaging.
type MessageHandler struct {
	Messages *repository.MessageRepo
	Users    *repository.UserRepo
}

func NewMessageHandler(messages *repository.MessageRepo, users *repository.UserRepo) *MessageHandler {
	if messages == nil || users == nil {
		panic("nil repository passed to NewMessageHandler")
	}
	return &MessageHandler{Messages: messages, Users: users}
}

type sendMessageReq struct {
	ReceiverID  uint64  `json:"receiver_id" validate:"required"`
	MessageText string  `json:"message_text" validate:"required"`
	BookingID   *uint64 `json:"booking_id"`
}

// Send creates a message from the caller to another user.
func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if req.ReceiverID == uid {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Cannot message yourself"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	exists, err := h.Users.Exists(ctx, req.ReceiverID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to send message"})
	}
	if !exists {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Receiver not found"})
	}

	m, err := h.Messages.Create(ctx, uid, req.ReceiverID, req.BookingID, req.MessageText)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to send message"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": m})
}

// List returns the caller's messages, newest first. ?with_user narrows
// to one conversation; ?unread_only=true keeps unread inbox entries.
func (h *MessageHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var withUser uint64
	if s := c.QueryParam("with_user"); s != "" {
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			withUser = n
		} else {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid with_user"})
		}
	}
	unreadOnly := c.QueryParam("unread_only") == "true"

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	messages, err := h.Messages.ListForUser(ctx, uid, withUser, unreadOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get messages"})
	}

	return c.JSON(http.StatusOK, echo.Map{"messages": messages})
}

// MarkRead flips is_read on a message addressed to the caller. A caller
// who is not the receiver gets 403.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid message id"})
	}
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	m, err := h.Messages.MarkRead(ctx, id, uid)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Message not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to mark message read"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": m})
}
