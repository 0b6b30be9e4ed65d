package engine

import (
	"errors"
	"fmt"

	"github.com/DedS3t/disney-monopoly/app/models"
)

var (
	ErrGameOver          = errors.New("the game is over")
	ErrWrongPhase        = errors.New("command not allowed right now")
	ErrAlreadyRolled     = errors.New("you have already rolled the dice")
	ErrBankrupt          = errors.New("player is bankrupt")
	ErrNegativeBalance   = errors.New("raise funds or declare bankruptcy before ending the turn")
	ErrNoJailCard        = errors.New("no get-out-of-jail card to use")
	ErrInvalidJailOption = errors.New("unknown jail option")
	ErrBidTooLow         = errors.New("bid must beat the current high bid")
	ErrRentOwed          = errors.New("rent is owed on this square")
	ErrPlayerCount       = errors.New("a game needs 2 to 6 players")
	ErrInvalidPlayer     = errors.New("every player needs a name and a distinct token")
	ErrInvalidConfig     = errors.New("invalid game configuration")
	ErrInvalidSnapshot   = errors.New("invalid snapshot")
)

func wrongPhase(have, want models.Phase) error {
	return fmt.Errorf("%w: phase is %s, want %s", ErrWrongPhase, have, want)
}
