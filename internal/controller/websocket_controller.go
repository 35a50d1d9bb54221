package controller

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofiber/websocket/v2"

	"ludoserver/internal/service"
	"ludoserver/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection runs the read loop for one player's session socket.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	code := c.Params("code")
	playerID := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(code, playerID, c); err != nil {
		slog.Warn("rejecting connection", "code", code, "player", playerID, "error", err)
		wsc.sendError(c, err.Error())
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			slog.Debug("unparseable message", "code", code, "player", playerID, "error", err)
			continue
		}

		// Errors are answered to the requester only; state updates go out
		// via the match broadcast.
		if err := wsc.handleMessage(code, playerID, msg); err != nil {
			wsc.sendError(c, err.Error())
		}
	}

	wsc.gameService.LeaveGame(code, playerID, c)
}

func (wsc *WebSocketController) handleMessage(code, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeStart:
		return wsc.gameService.StartGame(code, playerID)

	case ws.MessageTypeRoll:
		return wsc.gameService.RollDice(code, playerID)

	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		return wsc.gameService.MakeMove(code, playerID, move.TokenIndex)

	case ws.MessageTypeEmote:
		var emote ws.EmotePayload
		if err := json.Unmarshal(msg.Payload, &emote); err != nil {
			return err
		}
		wsc.gameService.Emote(code, playerID, emote.Emoji)
		return nil

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	payload, err := json.Marshal(ws.ErrorPayload{Message: errorMsg})
	if err != nil {
		return
	}
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: payload,
	})
}
