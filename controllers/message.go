package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/service-marketplace/middleware"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/repository"
)

type MessageController struct {
	messages *repository.MessageRepository
}

func NewMessageController(messages *repository.MessageRepository) *MessageController {
	return &MessageController{messages: messages}
}

type ThreadInput struct {
	ReceiverID uint  `json:"receiver_id"`
	BookingID  *uint `json:"booking_id"`
}

// CreateThread opens a thread to the receiver. If the caller already opened
// a thread to the same receiver, the existing thread is returned instead of
// a duplicate; a thread opened from the other side is a distinct thread.
func (mc *MessageController) CreateThread(c *fiber.Ctx) error {
	input := new(ThreadInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	caller := middleware.CurrentUser(c)
	if existing, err := mc.messages.FindThreadByPair(caller.ID, input.ReceiverID); err == nil {
		return c.Status(fiber.StatusCreated).JSON(existing)
	}

	thread := &models.MessageThread{
		InitiatorID: caller.ID,
		ReceiverID:  input.ReceiverID,
		BookingID:   input.BookingID,
	}
	if err := mc.messages.CreateThread(thread); err != nil {
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(thread)
}

// ListThreads returns every thread the caller participates in.
func (mc *MessageController) ListThreads(c *fiber.Ctx) error {
	threads, err := mc.messages.ListThreadsForUser(middleware.CurrentUser(c).ID)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(threads)
}

// PostMessage appends a message to a thread the caller participates in and
// bumps the thread's last-message timestamp.
func (mc *MessageController) PostMessage(c *fiber.Ctx) error {
	thread, status, msg := mc.participantThread(c)
	if thread == nil {
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	type MessageInput struct {
		Content string `json:"content"`
	}
	input := new(MessageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	message := &models.Message{
		ThreadID:    thread.ID,
		SenderID:    middleware.CurrentUser(c).ID,
		Content:     input.Content,
		MessageType: "TEXT",
	}
	if err := mc.messages.CreateMessage(message); err != nil {
		return serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// ListMessages returns a thread's messages to one of its participants.
func (mc *MessageController) ListMessages(c *fiber.Ctx) error {
	thread, status, msg := mc.participantThread(c)
	if thread == nil {
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	messages, err := mc.messages.ListMessages(thread.ID)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(messages)
}

// participantThread loads the thread from the id param and checks the
// caller is one of its two participants. On failure the thread is nil and
// the status/message describe the error response.
func (mc *MessageController) participantThread(c *fiber.Ctx) (*models.MessageThread, int, string) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, fiber.StatusBadRequest, "Invalid thread ID"
	}

	thread, err := mc.messages.FindThreadByID(uint(id))
	if err != nil {
		return nil, fiber.StatusNotFound, "Thread not found"
	}

	if !thread.HasParticipant(middleware.CurrentUser(c).ID) {
		return nil, fiber.StatusForbidden, "Not allowed"
	}
	return thread, 0, ""
}
