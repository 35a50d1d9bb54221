package service

import (
	"github.com/gofiber/websocket/v2"

	"ludoserver/internal/model"
)

// GameService is the facade the controllers talk to. It resolves the match
// for a join code and forwards the intent; the match itself does all
// validation.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(hostName, hostID string) (model.GameState, error) {
	game, err := gs.gameManager.CreateGame(hostName, hostID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gs *GameService) JoinGame(code, name, playerID string) (model.GameState, error) {
	return gs.gameManager.JoinGame(code, name, playerID)
}

func (gs *GameService) GetGameState(code string) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(code)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gs *GameService) StartGame(code, playerID string) error {
	game, err := gs.gameManager.GetGame(code)
	if err != nil {
		return err
	}
	return game.Start(playerID)
}

func (gs *GameService) RollDice(code, playerID string) error {
	game, err := gs.gameManager.GetGame(code)
	if err != nil {
		return err
	}
	return game.RollDice(playerID)
}

func (gs *GameService) MakeMove(code, playerID string, tokenIndex int) error {
	game, err := gs.gameManager.GetGame(code)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, tokenIndex)
}

func (gs *GameService) Emote(code, playerID, emoji string) {
	game, err := gs.gameManager.GetGame(code)
	if err != nil {
		return
	}
	game.Emote(playerID, emoji)
}

func (gs *GameService) RegisterConnection(code, playerID string, conn *websocket.Conn) error {
	game, err := gs.gameManager.GetGame(code)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(code, playerID string, conn *websocket.Conn) {
	game, err := gs.gameManager.GetGame(code)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID, conn)
}

// LeaveGame is the disconnect path: drop the socket and, while the match is
// still a lobby, free the seat.
func (gs *GameService) LeaveGame(code, playerID string, conn *websocket.Conn) {
	gs.UnregisterConnection(code, playerID, conn)
	gs.gameManager.RemovePlayer(code, playerID)
}
