package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnsurePlayerID resolves the caller's opaque player identity from the
// X-Player-ID header or playerId query parameter, minting a fresh id when
// the client has none yet. The id is echoed back so the client can persist
// it and present it again on reconnect.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("playerID") != nil {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}
		if playerID == "" {
			playerID = uuid.NewString()
		}

		c.Locals("playerID", playerID)
		c.Set("X-Player-ID", playerID)
		return c.Next()
	}
}
