package checkers

import (
	"fmt"

	"github.com/checkers/game"
)

// Outcome is how a game ended.
type Outcome struct {
	Draw bool `json:"draw"`
	// Winner is only meaningful when Draw is false.
	Winner game.Player `json:"winner"`
	Moves  int         `json:"moves"`
}

func (o Outcome) String() string {
	if o.Draw {
		return "Game over! Player 1 and Player 2 draw!"
	}
	return fmt.Sprintf("Game over! %v wins!", o.Winner)
}
