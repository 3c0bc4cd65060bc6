package console

import (
	"fmt"
	"io"
)

// The wording below is part of the game's personality, so handle with care.
const (
	askPlayer1NameText = "What is the name of player 1?"
	askPlayer2NameText = "What is the name of player 2?"
	askReplayText      = "Would you like to view a replay?"
	askPlayAgainText   = "Would you like to play again?"

	howToMoveText  = "Input a square from 1-9 to move."
	turnPromptText = "%s to play: "
	winnerText     = "%s wins!"
	drawText       = "Draw"
	scoreLineText  = "%s has %d wins"
	interruptText  = "Don't leave meeeeee.............."
	farewellText   = "Fine then, go, see if I care. Ok wait, please..., come back!"

	invalidMoveText  = "That is not a valid move, try again selecting a number between 1 and 9"
	cellOccupiedText = "Someone has already occupied this space, please choose an empty space"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}
