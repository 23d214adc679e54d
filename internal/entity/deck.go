package entity

import "github.com/rocketscienceinc/monopoly-backend/internal/board"

// Deck is a shuffled permutation of card indices drawn in a cycle. Cards are never removed:
// the cursor wraps back to the start once the permutation is exhausted.
type Deck struct {
	Type   board.DeckType `json:"type"`
	Order  []int          `json:"order"`
	Cursor int            `json:"cursor"`
}

func NewDeck(deckType board.DeckType, order []int) *Deck {
	return &Deck{Type: deckType, Order: order}
}

// Draw - returns the card index under the cursor and advances it.
func (that *Deck) Draw() int {
	idx := that.Order[that.Cursor]
	that.Cursor = (that.Cursor + 1) % len(that.Order)

	return idx
}

func (that *Deck) Clone() *Deck {
	if that == nil {
		return nil
	}

	out := *that
	out.Order = append([]int(nil), that.Order...)

	return &out
}
