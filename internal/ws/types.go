package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	// Inbound intents
	MessageTypeStart MessageType = "start"
	MessageTypeRoll  MessageType = "roll"
	MessageTypeMove  MessageType = "move"
	MessageTypeEmote MessageType = "emote"

	// Outbound events
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeDiceRolled MessageType = "diceRolled"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type MovePayload struct {
	TokenIndex int `json:"tokenIndex"`
}

type EmotePayload struct {
	Emoji    string `json:"emoji"`
	PlayerID string `json:"playerId,omitempty"`
}

type DiceRolledPayload struct {
	Value    int    `json:"value"`
	PlayerID string `json:"playerId"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
