package cards

import (
	"fmt"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/platform/board"
	"github.com/DedS3t/disney-monopoly/platform/ledger"
)

// Result is everything the engine needs to apply a card. Execute never mutates its inputs.
type Result struct {
	Kind models.ActionKind
	// MoneyDelta is the drawer's net change, GO reward and collections included.
	MoneyDelta int
	// NewPosition is -1 when the card does not relocate the player.
	NewPosition     int
	PassedGo        bool
	GoToJail        bool
	GrantJailCard   bool
	CollectFromAll  int
	Payers          []int
	RepairsBill     int
	FireSquareEvent bool
}

// Execute interprets card for the player at seat drawer.
func Execute(drawer int, players []models.Player, card models.Card, l *ledger.Ledger, cfg models.Config) Result {
	p := players[drawer]
	act := card.Action
	res := Result{Kind: act.Kind, NewPosition: -1}

	switch act.Kind {
	case models.ActionCollect:
		res.MoneyDelta = act.Amount
	case models.ActionPay:
		res.MoneyDelta = -act.Amount
	case models.ActionGoto:
		res.NewPosition = act.Destination
		if act.CollectGo && act.Destination <= p.Position {
			res.PassedGo = true
			res.MoneyDelta = cfg.GoReward
		}
		res.FireSquareEvent = act.Destination != board.GoPosition
	case models.ActionMove:
		res.NewPosition = board.Advance(p.Position, act.Spaces)
		if act.Spaces > 0 && res.NewPosition < p.Position {
			res.PassedGo = true
			res.MoneyDelta = cfg.GoReward
		}
		res.FireSquareEvent = true
	case models.ActionJail:
		res.GoToJail = true
	case models.ActionGetOutOfJailFree:
		res.GrantJailCard = true
	case models.ActionCollectFromAll:
		res.CollectFromAll = act.Amount
		for i, other := range players {
			if i != drawer && !other.Bankrupt {
				res.Payers = append(res.Payers, i)
			}
		}
		res.MoneyDelta = act.Amount * len(res.Payers)
	case models.ActionRepairs:
		res.RepairsBill = l.Repairs(drawer, act.HouseCost, act.HotelCost)
		res.MoneyDelta = -res.RepairsBill
	case models.ActionNextStation:
		station, wrapped := board.NextStation(p.Position)
		res.NewPosition = station
		if wrapped {
			res.PassedGo = true
			res.MoneyDelta = cfg.GoReward
		}
		res.FireSquareEvent = true
	default:
		panic(fmt.Sprintf("cards: unknown action %q on card %d", act.Kind, card.ID))
	}
	return res
}
