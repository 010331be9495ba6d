package registrationHandler

import (
	"ArtisanCraft/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// UpgradeEvents gates the event stream route so only websocket upgrade
// requests reach the stream handler.
func (h *RegistrationHandler) UpgradeEvents(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		ctx.Locals("session_id", ctx.Params("session_id"))
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}

// StreamEvents pushes wizard session events to the connected client until
// the client disconnects.
func (h *RegistrationHandler) StreamEvents(conn *websocket.Conn) {
	sessionID, ok := conn.Locals("session_id").(string)
	if !ok || sessionID == "" {
		conn.Close()
		return
	}

	events := h.broker.Subscribe(sessionID)
	defer h.broker.Unsubscribe(sessionID, events)

	h.log.WithFields(log.Fields{
		"session_id": sessionID,
	}).Debug("Event stream opened")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, open := <-events:
			if !open {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				h.log.WithFields(log.Fields{
					"session_id": sessionID,
					"error":      err.Error(),
				}).Debug("Event stream write failed")
				return
			}
		case <-done:
			return
		}
	}
}
