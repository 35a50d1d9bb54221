package model

import "math/rand/v2"

// InitializeTokens builds the starting board: four tokens per color, all at
// home, for all four colors whether or not the seats are taken.
func InitializeTokens() map[PlayerColor][]Token {
	tokens := make(map[PlayerColor][]Token, len(TurnOrder))
	for _, color := range TurnOrder {
		set := make([]Token, TokensPerPlayer)
		for i := range set {
			set[i] = Token{ID: i, Position: PositionHome, Status: TokenHome}
		}
		tokens[color] = set
	}
	return tokens
}

// RollDice returns a biased roll: a 20% chance forces a 6, otherwise the
// roll is uniform over 1..6. The bias is an intentional gameplay feature,
// giving P(6) = 1/3 and P(other face) = 2/15.
func RollDice() int {
	if rand.Float64() < 0.2 {
		return 6
	}
	return rand.IntN(6) + 1
}

func playerByID(state *GameState, playerID string) *Player {
	for i := range state.Players {
		if state.Players[i].ID == playerID {
			return &state.Players[i]
		}
	}
	return nil
}

// IsValidMove reports whether the current player may advance the given token
// slot by steps. A token still at home needs a 6 to exit; a token on the
// path must land exactly on 57, never beyond. An out-of-range slot is simply
// an invalid move, not a fault.
func IsValidMove(state *GameState, playerID string, tokenIndex, steps int) bool {
	player := playerByID(state, playerID)
	if player == nil {
		return false
	}
	if state.Players[state.CurrentPlayerIndex].ID != playerID {
		return false
	}
	if tokenIndex < 0 || tokenIndex >= TokensPerPlayer {
		return false
	}

	token := state.Tokens[player.Color][tokenIndex]
	if token.Status == TokenFinished {
		return false
	}
	if token.Position == PositionHome {
		return steps == 6
	}
	return token.Position+steps <= PositionFinished
}

// CanPlayerMove reports whether at least one of the player's tokens has a
// legal move for the rolled value.
func CanPlayerMove(state *GameState, playerID string, steps int) bool {
	for i := 0; i < TokensPerPlayer; i++ {
		if IsValidMove(state, playerID, i, steps) {
			return true
		}
	}
	return false
}

// ApplyMove advances a token and resolves the consequences: finishing, win
// detection, captures, and turn advance. Callers are expected to have
// checked IsValidMove first; on a precondition violation the state is left
// untouched.
func ApplyMove(state *GameState, playerID string, tokenIndex, steps int) {
	if !IsValidMove(state, playerID, tokenIndex, steps) {
		return
	}

	player := playerByID(state, playerID)
	tokens := state.Tokens[player.Color]
	token := &tokens[tokenIndex]

	if token.Position == PositionHome {
		token.Position = 0
	} else {
		token.Position += steps
	}
	token.Status = statusForPosition(token.Position)

	// A win ends the match immediately; no capture or turn advance after.
	if allFinished(tokens) {
		state.Status = StatusFinished
		winner := player.Color
		state.Winner = &winner
		state.WaitingForMove = false
		state.DiceValue = nil
		return
	}

	captureAt(state, player.Color, token.Position)

	// Rolling a 6 grants the same player another turn.
	if steps != 6 {
		state.CurrentPlayerIndex = (state.CurrentPlayerIndex + 1) % len(state.Players)
	}
	state.WaitingForMove = false
	state.DiceValue = nil
}

func allFinished(tokens []Token) bool {
	for _, t := range tokens {
		if t.Status != TokenFinished {
			return false
		}
	}
	return true
}

// captureAt sends every opposing token sharing the mover's absolute square
// back home. Captures only happen on the shared loop and never on a safe
// square; stacked opponents are all captured, own tokens never are.
func captureAt(state *GameState, mover PlayerColor, relative int) {
	if relative < 0 || relative >= PathLength || IsSafeSquare(relative) {
		return
	}
	absolute := AbsolutePosition(mover, relative)
	for color, tokens := range state.Tokens {
		if color == mover {
			continue
		}
		for i := range tokens {
			if AbsolutePosition(color, tokens[i].Position) == absolute {
				tokens[i].Position = PositionHome
				tokens[i].Status = statusForPosition(PositionHome)
			}
		}
	}
}
