package cards

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/DedS3t/disney-monopoly/app/models"
)

//go:embed cards.json
var cardsJSON []byte

const DeckSize = 17

// LoadSpecial returns the printed card list of both decks, in printed order.
func LoadSpecial() map[models.DeckKind][]models.Card {
	cards := map[models.DeckKind][]models.Card{}
	if err := json.Unmarshal(cardsJSON, &cards); err != nil {
		panic(err)
	}
	for kind, list := range cards {
		if len(list) != DeckSize {
			panic(fmt.Sprintf("cards: %s deck has %d cards", kind, len(list)))
		}
	}
	return cards
}

// Deck is a ring buffer: drawing moves the front card to the back.
type Deck struct {
	kind  models.DeckKind
	cards []models.Card
}

// NewDeck shuffles cards once with rng.
func NewDeck(kind models.DeckKind, cards []models.Card, rng *rand.Rand) *Deck {
	out := make([]models.Card, len(cards))
	copy(out, cards)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return &Deck{kind: kind, cards: out}
}

// RestoreDeck puts cards back in the saved order. Every printed card must appear exactly once.
func RestoreDeck(kind models.DeckKind, printed []models.Card, order []int) (*Deck, error) {
	if len(order) != len(printed) {
		return nil, fmt.Errorf("%s deck order has %d cards, want %d", kind, len(order), len(printed))
	}
	byID := make(map[int]models.Card, len(printed))
	for _, c := range printed {
		byID[c.ID] = c
	}
	out := make([]models.Card, 0, len(order))
	for _, id := range order {
		c, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%s deck order has unknown or repeated card %d", kind, id)
		}
		delete(byID, id)
		out = append(out, c)
	}
	return &Deck{kind: kind, cards: out}, nil
}

func (d *Deck) Kind() models.DeckKind {
	return d.kind
}

func (d *Deck) Draw() models.Card {
	card := d.cards[0]
	d.cards = append(d.cards[1:], card)
	return card
}

func (d *Deck) Peek() models.Card {
	return d.cards[0]
}

// Order returns the card ids front to back.
func (d *Deck) Order() []int {
	ids := make([]int, len(d.cards))
	for i, c := range d.cards {
		ids[i] = c.ID
	}
	return ids
}

func (d *Deck) Card(id int) (models.Card, bool) {
	for _, c := range d.cards {
		if c.ID == id {
			return c, true
		}
	}
	return models.Card{}, false
}
