package model

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"ludoserver/internal/ws"
)

// GameConnections holds the live sockets for one match. Outbound frames go
// through a single sender goroutine so every client observes events in the
// order the match produced them.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.Mutex

	outbound chan ws.Message
	qmu      sync.Mutex
	closed   bool
}

func NewGameConnections() *GameConnections {
	gc := &GameConnections{
		connections: make(map[string]*websocket.Conn),
		outbound:    make(chan ws.Message, 256),
	}
	go gc.run()
	return gc
}

func (gc *GameConnections) run() {
	for msg := range gc.outbound {
		gc.broadcast(msg)
	}
}

// enqueue hands a frame to the sender goroutine. A full queue drops the
// frame instead of blocking the match; clients resync on the next state
// broadcast.
func (gc *GameConnections) enqueue(msg ws.Message) {
	gc.qmu.Lock()
	defer gc.qmu.Unlock()

	if gc.closed {
		return
	}
	select {
	case gc.outbound <- msg:
	default:
		slog.Warn("outbound queue full, dropping frame", "type", msg.Type)
	}
}

func (gc *GameConnections) close() {
	gc.qmu.Lock()
	defer gc.qmu.Unlock()

	if !gc.closed {
		gc.closed = true
		close(gc.outbound)
	}
}

// register stores a player's connection and returns the one it replaced, if
// any. Replacing (rather than rejecting) is what lets a player reconnect
// mid-game with the same id.
func (gc *GameConnections) register(playerID string, conn *websocket.Conn) *websocket.Conn {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	old := gc.connections[playerID]
	gc.connections[playerID] = conn
	return old
}

// unregister removes the player's connection, but only if it is still the
// one given; a stale close from a replaced socket must not evict its
// successor.
func (gc *GameConnections) unregister(playerID string, conn *websocket.Conn) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if gc.connections[playerID] == conn {
		delete(gc.connections, playerID)
	}
}

// broadcast writes a message to every registered connection, dropping
// connections that fail.
func (gc *GameConnections) broadcast(msg ws.Message) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	for playerID, conn := range gc.connections {
		if err := conn.WriteJSON(msg); err != nil {
			slog.Warn("dropping dead connection", "player", playerID, "error", err)
			delete(gc.connections, playerID)
		}
	}
}

// Game owns the authoritative state for one match. Every mutation goes
// through its mutex, so each match has exactly one logical writer.
type Game struct {
	mu          sync.Mutex
	state       GameState
	connections *GameConnections

	// rollGen increments on every roll and every applied move. The
	// forced-pass timer captures the generation at schedule time and
	// no-ops if the match has moved on before it fires.
	rollGen         int
	forcedPassDelay time.Duration
	roll            func() int
}

func NewGame(code, hostName, hostID string, forcedPassDelay time.Duration) *Game {
	return &Game{
		state: GameState{
			Code:    code,
			Players: []Player{{ID: hostID, Name: hostName, Color: ColorRed}},
			Tokens:  InitializeTokens(),
			Status:  StatusLobby,
		},
		connections:     NewGameConnections(),
		forcedPassDelay: forcedPassDelay,
		roll:            RollDice,
	}
}

func (g *Game) Code() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Code
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// snapshotLocked deep-copies the players and tokens so the returned state
// can be read and marshaled after the match mutex is released, while the
// live state keeps mutating. Must be called with g.mu held.
func (g *Game) snapshotLocked() GameState {
	state := g.state
	state.Players = append([]Player(nil), g.state.Players...)
	state.Tokens = make(map[PlayerColor][]Token, len(g.state.Tokens))
	for color, tokens := range g.state.Tokens {
		state.Tokens[color] = append([]Token(nil), tokens...)
	}
	return state
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return playerByID(&g.state, playerID) != nil
}

// AddPlayer seats a new player on the next free color. A player id that is
// already seated gets its current seat back, which makes join idempotent
// and covers rejoin after a dropped connection.
func (g *Game) AddPlayer(name, playerID string) (GameState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerByID(&g.state, playerID) != nil {
		return g.snapshotLocked(), nil
	}
	if g.state.Status != StatusLobby {
		return GameState{}, ErrGameAlreadyStarted
	}
	if len(g.state.Players) >= MaxPlayers {
		return GameState{}, ErrGameFull
	}

	g.state.Players = append(g.state.Players, Player{
		ID:    playerID,
		Name:  name,
		Color: TurnOrder[len(g.state.Players)],
	})
	g.broadcastStateLocked()
	return g.snapshotLocked(), nil
}

// RemovePlayer unseats a player while the match is still in the lobby and
// reports whether the lobby is now empty. Once the match has started the
// seat and its tokens stay put so the player can reconnect.
func (g *Game) RemovePlayer(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Status != StatusLobby {
		return false
	}
	for i, p := range g.state.Players {
		if p.ID == playerID {
			g.state.Players = append(g.state.Players[:i], g.state.Players[i+1:]...)
			break
		}
	}
	if len(g.state.Players) == 0 {
		return true
	}
	// Colors are assigned by seat count, so compact the remaining seats.
	for i := range g.state.Players {
		g.state.Players[i].Color = TurnOrder[i]
	}
	g.broadcastStateLocked()
	return false
}

// Start moves the match from lobby to in_progress. Only the host (seat 0)
// may start.
func (g *Game) Start(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Status != StatusLobby {
		return ErrGameAlreadyStarted
	}
	if g.state.Players[0].ID != playerID {
		return ErrNotHost
	}

	g.state.Status = StatusInProgress
	g.state.WaitingForMove = false
	slog.Info("game started", "code", g.state.Code, "players", len(g.state.Players))
	g.broadcastStateLocked()
	return nil
}

// RollDice produces a roll for the current player and stores it as the
// pending dice value. If the roll yields no legal move, a forced pass is
// scheduled: after the delay the turn advances unless the roll was a 6,
// which grants another roll instead.
func (g *Game) RollDice(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Status != StatusInProgress {
		return ErrGameNotStarted
	}
	if g.state.Players[g.state.CurrentPlayerIndex].ID != playerID {
		return ErrNotYourTurn
	}
	if g.state.DiceValue != nil {
		return ErrAlreadyRolled
	}

	value := g.roll()
	g.state.DiceValue = &value
	g.state.LastRollBy = &playerID
	g.state.WaitingForMove = true
	g.rollGen++

	g.broadcastLocked(ws.MessageTypeDiceRolled, ws.DiceRolledPayload{Value: value, PlayerID: playerID})

	if !CanPlayerMove(&g.state, playerID, value) {
		// The roll stays visible for the delay window, but no move may be
		// made against it.
		g.state.WaitingForMove = false
		gen := g.rollGen
		slog.Info("no legal move, forcing pass", "code", g.state.Code, "player", playerID, "roll", value)
		time.AfterFunc(g.forcedPassDelay, func() { g.forcePass(gen, value) })
	}

	g.broadcastStateLocked()
	return nil
}

// forcePass is the delayed turn advance for a roll with no legal move. It
// follows the same rule as an applied move: a 6 keeps the turn. The
// generation check makes a stale timer a no-op.
func (g *Game) forcePass(gen, value int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rollGen != gen || g.state.Status != StatusInProgress {
		return
	}

	if value != 6 {
		g.state.CurrentPlayerIndex = (g.state.CurrentPlayerIndex + 1) % len(g.state.Players)
	}
	g.state.DiceValue = nil
	g.state.LastRollBy = nil
	g.state.WaitingForMove = false
	g.rollGen++
	g.broadcastStateLocked()
}

// MakeMove applies the pending dice value to one of the current player's
// tokens.
func (g *Game) MakeMove(playerID string, tokenIndex int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Status != StatusInProgress {
		return ErrGameNotStarted
	}
	if g.state.DiceValue == nil {
		return ErrInvalidMove
	}
	if g.state.Players[g.state.CurrentPlayerIndex].ID != playerID {
		return ErrNotYourTurn
	}

	steps := *g.state.DiceValue
	if !IsValidMove(&g.state, playerID, tokenIndex, steps) {
		return ErrInvalidMove
	}

	ApplyMove(&g.state, playerID, tokenIndex, steps)
	g.rollGen++
	if g.state.Winner != nil {
		slog.Info("game won", "code", g.state.Code, "winner", *g.state.Winner)
	}
	g.broadcastStateLocked()
	return nil
}

// Emote relays a player's emoji to the whole session. Pure presentation, no
// state involved.
func (g *Game) Emote(playerID, emoji string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.broadcastLocked(ws.MessageTypeEmote, ws.EmotePayload{Emoji: emoji, PlayerID: playerID})
}

// RegisterConnection attaches a socket to the match and pushes the current
// state to everyone. Only seated players may connect; a second connection
// for the same player replaces the first.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	if playerByID(&g.state, playerID) == nil {
		g.mu.Unlock()
		return ErrNotInGame
	}
	g.mu.Unlock()

	if old := g.connections.register(playerID, conn); old != nil {
		old.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replaced by new connection"),
		)
		old.Close()
	}

	g.mu.Lock()
	g.broadcastStateLocked()
	g.mu.Unlock()
	return nil
}

func (g *Game) UnregisterConnection(playerID string, conn *websocket.Conn) {
	g.connections.unregister(playerID, conn)
}

// broadcastStateLocked fans the current state out to all connections. Must
// be called with g.mu held; the write itself happens off the match lock.
func (g *Game) broadcastStateLocked() {
	g.broadcastLocked(ws.MessageTypeGameState, g.state)
}

func (g *Game) broadcastLocked(msgType ws.MessageType, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal broadcast payload", "code", g.state.Code, "type", msgType, "error", err)
		return
	}
	g.connections.enqueue(ws.Message{Type: msgType, Payload: raw})
}

// Close stops the match's sender goroutine. Called when the registry drops
// an emptied lobby.
func (g *Game) Close() {
	g.connections.close()
}
