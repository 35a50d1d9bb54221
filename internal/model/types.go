package model

type PlayerColor string

const (
	ColorRed    PlayerColor = "red"
	ColorGreen  PlayerColor = "green"
	ColorBlue   PlayerColor = "blue"
	ColorYellow PlayerColor = "yellow"
)

// TurnOrder is the fixed seat assignment order. The host always takes red,
// joiners take the next free color in this order.
var TurnOrder = [4]PlayerColor{ColorRed, ColorGreen, ColorBlue, ColorYellow}

const (
	MaxPlayers      = 4
	TokensPerPlayer = 4
)

type TokenStatus string

const (
	TokenHome     TokenStatus = "home"
	TokenActive   TokenStatus = "active"
	TokenFinished TokenStatus = "finished"
)

const (
	PositionHome     = -1
	PositionFinished = 57
)

type Token struct {
	ID       int         `json:"id"`
	Position int         `json:"position"`
	Status   TokenStatus `json:"status"`
}

// statusForPosition derives a token's status from its position. Status is
// never written independently; every mutation recomputes it here.
func statusForPosition(position int) TokenStatus {
	switch position {
	case PositionHome:
		return TokenHome
	case PositionFinished:
		return TokenFinished
	default:
		return TokenActive
	}
}

type Player struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Color PlayerColor `json:"color"`
	Ready bool        `json:"ready"`
}

type GameStatus string

const (
	StatusLobby      GameStatus = "lobby"
	StatusInProgress GameStatus = "in_progress"
	StatusFinished   GameStatus = "finished"
)

// GameState is the authoritative state of one match. Player order is join
// order is turn order; players[0] is the host. Tokens exist for all four
// colors regardless of how many seats are taken.
type GameState struct {
	Code               string                  `json:"code"`
	Players            []Player                `json:"players"`
	Tokens             map[PlayerColor][]Token `json:"tokens"`
	CurrentPlayerIndex int                     `json:"currentPlayerIndex"`
	DiceValue          *int                    `json:"diceValue"`
	Status             GameStatus              `json:"status"`
	Winner             *PlayerColor            `json:"winner"`
	LastRollBy         *string                 `json:"lastRollBy"`
	WaitingForMove     bool                    `json:"waitingForMove"`
}
