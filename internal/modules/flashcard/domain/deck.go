package domain

import apperrors "gojuon/internal/platform/errors"

// Card is one flashcard: the literal glyph shown, its hiragana canonical
// form, and the romaji on the back.
type Card struct {
	Glyph     string
	Canonical string
	Romaji    string
}

// Deck walks a fixed card list with wraparound and a flip flag. Navigation
// always lands on the front side.
type Deck struct {
	cards   []Card
	index   int
	flipped bool
}

func NewDeck(cards []Card) (*Deck, error) {
	if len(cards) == 0 {
		return nil, apperrors.ErrNoQuestion
	}
	return &Deck{cards: cards}, nil
}

func (d *Deck) Current() Card { return d.cards[d.index] }
func (d *Deck) Index() int    { return d.index }
func (d *Deck) Count() int    { return len(d.cards) }
func (d *Deck) Flipped() bool { return d.flipped }

func (d *Deck) Flip() { d.flipped = !d.flipped }

func (d *Deck) Next() {
	d.index = (d.index + 1) % len(d.cards)
	d.flipped = false
}

func (d *Deck) Prev() {
	d.index = (d.index - 1 + len(d.cards)) % len(d.cards)
	d.flipped = false
}

// Shuffle reorders the deck with the given swap-driven shuffler and rewinds
// to the first card.
func (d *Deck) Shuffle(shuffle func(n int, swap func(i, j int))) {
	shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.index = 0
	d.flipped = false
}
