package models

import "time"

// Config is fixed when a session starts.
type Config struct {
	Mode              string `json:"mode"`
	StartingMoney     int    `json:"startingMoney"`
	GoReward          int    `json:"goReward"`
	JailFine          int    `json:"jailFine"`
	MaxJailTurns      int    `json:"maxJailTurns"`
	MaxTurns          int    `json:"maxTurns"`         // 0 = unlimited
	TimeLimitMinutes  int    `json:"timeLimitMinutes"` // 0 = unlimited
	InitialProperties int    `json:"initialProperties"`
	AuctionsEnabled   bool   `json:"auctionsEnabled"`
}

var GameModes = map[string]Config{
	"classic": {
		Mode:            "classic",
		StartingMoney:   1500,
		GoReward:        200,
		JailFine:        50,
		MaxJailTurns:    3,
		AuctionsEnabled: true,
	},
	"quick": {
		Mode:              "quick",
		StartingMoney:     1000,
		GoReward:          200,
		JailFine:          50,
		MaxJailTurns:      3,
		MaxTurns:          60,
		TimeLimitMinutes:  30,
		InitialProperties: 2,
		AuctionsEnabled:   false,
	},
	"custom": {
		Mode:            "custom",
		StartingMoney:   1500,
		GoReward:        200,
		JailFine:        50,
		MaxJailTurns:    3,
		AuctionsEnabled: true,
	},
}

// ConfigOverrides carries the custom-mode fields a setup screen may change.
// Nil fields keep the preset value.
type ConfigOverrides struct {
	StartingMoney     *int  `json:"startingMoney"`
	GoReward          *int  `json:"goReward"`
	JailFine          *int  `json:"jailFine"`
	MaxTurns          *int  `json:"maxTurns"`
	TimeLimitMinutes  *int  `json:"timeLimitMinutes"`
	InitialProperties *int  `json:"initialProperties"`
	AuctionsEnabled   *bool `json:"auctionsEnabled"`
}

// ModeConfig returns the preset for mode with overrides applied on top.
func ModeConfig(mode string, o ConfigOverrides) (Config, bool) {
	cfg, ok := GameModes[mode]
	if !ok {
		return Config{}, false
	}
	if o.StartingMoney != nil {
		cfg.StartingMoney = *o.StartingMoney
	}
	if o.GoReward != nil {
		cfg.GoReward = *o.GoReward
	}
	if o.JailFine != nil {
		cfg.JailFine = *o.JailFine
	}
	if o.MaxTurns != nil {
		cfg.MaxTurns = *o.MaxTurns
	}
	if o.TimeLimitMinutes != nil {
		cfg.TimeLimitMinutes = *o.TimeLimitMinutes
	}
	if o.InitialProperties != nil {
		cfg.InitialProperties = *o.InitialProperties
	}
	if o.AuctionsEnabled != nil {
		cfg.AuctionsEnabled = *o.AuctionsEnabled
	}
	return cfg, true
}

const (
	GameStatusInProgress = "in progress"
	GameStatusFinished   = "finished"
)

// Game is the postgres record of a session.
type Game struct {
	Id          string    `pg:",pk" json:"id"`
	Code        string    `pg:",unique" json:"code"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Mode        string    `json:"mode"`
	Players     []string  `pg:",array" json:"players"`
	Winner      string    `json:"winner,omitempty"`
	TurnsPlayed int       `pg:",use_zero" json:"turnsPlayed"`
	CreatedAt   time.Time `json:"createdAt"`
	FinishedAt  time.Time `json:"finishedAt,omitempty"`
}

type GameCreateDto struct {
	Name      string          `json:"name"`
	Mode      string          `json:"mode"`
	Players   []PlayerDto     `json:"players"`
	Overrides ConfigOverrides `json:"config"`
}

type VerifyGameDto struct {
	Code string `query:"code"`
}

type SquareDto struct {
	Square int `json:"square"`
}

type PurchaseDto struct {
	Accept bool `json:"accept"`
}

type BidDto struct {
	Amount int `json:"amount"`
}

type JailChoiceDto struct {
	Option string `json:"option"`
}

type JoinGameDto struct {
	Code string `json:"code"`
}
