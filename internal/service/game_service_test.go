package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludoserver/internal/model"
)

// Drives a whole session through the facade with the real biased die:
// create, join, start, then roll until a six brings a token out of home.
func TestGameServiceFullFlow(t *testing.T) {
	gm := NewGameManager(5 * time.Millisecond)
	gs := NewGameService(gm)

	state, err := gs.CreateGame("Alice", "host")
	require.NoError(t, err)
	code := state.Code

	_, err = gs.JoinGame(code, "Bob", "guest")
	require.NoError(t, err)
	require.NoError(t, gs.StartGame(code, "host"))

	for attempt := 0; attempt < 200; attempt++ {
		state, err = gs.GetGameState(code)
		require.NoError(t, err)
		current := state.Players[state.CurrentPlayerIndex]

		if err := gs.RollDice(code, current.ID); err != nil {
			// A forced pass from the previous roll is still pending.
			time.Sleep(5 * time.Millisecond)
			continue
		}

		state, err = gs.GetGameState(code)
		require.NoError(t, err)
		if state.DiceValue != nil && *state.DiceValue == 6 {
			require.NoError(t, gs.MakeMove(code, current.ID, 0))

			moved, err := gs.GetGameState(code)
			require.NoError(t, err)
			token := moved.Tokens[current.Color][0]
			assert.Equal(t, 0, token.Position)
			assert.Equal(t, model.TokenActive, token.Status)
			assert.Nil(t, moved.DiceValue)
			return
		}

		// No move possible from home without a six; wait out the pass.
		time.Sleep(15 * time.Millisecond)
	}
	t.Fatal("never rolled a six in 200 attempts")
}
