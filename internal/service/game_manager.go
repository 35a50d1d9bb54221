// service/game_manager.go
package service

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"ludoserver/internal/model"
)

// Join codes skip visually ambiguous characters (no I, 1, O, 0).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codeLength      = 6
	maxCodeAttempts = 64
)

// GameManager is the registry of live matches, keyed by join code.
type GameManager struct {
	games           map[string]*model.Game
	mu              sync.RWMutex
	forcedPassDelay time.Duration
}

func NewGameManager(forcedPassDelay time.Duration) *GameManager {
	return &GameManager{
		games:           make(map[string]*model.Game),
		forcedPassDelay: forcedPassDelay,
	}
}

// CreateGame builds a fresh match with the host seated as red and registers
// it under a new join code.
func (gm *GameManager) CreateGame(hostName, hostID string) (*model.Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	code, err := gm.generateCode()
	if err != nil {
		return nil, err
	}

	game := model.NewGame(code, hostName, hostID, gm.forcedPassDelay)
	gm.games[code] = game
	slog.Info("game created", "code", code, "host", hostName)
	return game, nil
}

// generateCode draws codes until one is free. Retries are bounded so a
// pathologically full code space surfaces as an error instead of spinning.
// Caller must hold gm.mu.
func (gm *GameManager) generateCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		buf := make([]byte, codeLength)
		for i := range buf {
			buf[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
		}
		if _, exists := gm.games[string(buf)]; !exists {
			return string(buf), nil
		}
	}
	return "", fmt.Errorf("generate join code: no free code after %d attempts", maxCodeAttempts)
}

func (gm *GameManager) GetGame(code string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[code]
	if !exists {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

// JoinGame seats a player in the match with the given code.
func (gm *GameManager) JoinGame(code, name, playerID string) (model.GameState, error) {
	game, err := gm.GetGame(code)
	if err != nil {
		return model.GameState{}, err
	}
	return game.AddPlayer(name, playerID)
}

// RemovePlayer unseats a player from a lobby and garbage-collects the match
// once its last player leaves. For started matches this is a no-op; the
// seat stays for reconnects.
func (gm *GameManager) RemovePlayer(code, playerID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	game, exists := gm.games[code]
	if !exists {
		return
	}
	if game.RemovePlayer(playerID) {
		delete(gm.games, code)
		game.Close()
		slog.Info("empty lobby deleted", "code", code)
	}
}
