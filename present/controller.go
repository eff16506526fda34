package present

import (
	"sort"

	"github.com/lixenwraith/deckplay/deck"
)

// Controller owns the presentation state: the current slide index and
// the revealed quiz items. It is the only mutator of that state, and
// all mutation happens synchronously from the event loop that calls
// its methods. Navigation is total: every call either moves the index,
// sets it directly, or is a no-op. No method returns an error.
type Controller struct {
	deck  *deck.Deck
	index int

	// revealed maps quiz item ID to the option chosen when the item
	// was revealed, or NoChoice when it was revealed without one. An
	// entry never changes or disappears within a session.
	revealed map[string]int
}

// NoChoice marks an item revealed without a recorded option.
const NoChoice = -1

// New creates a controller positioned at slide 0 with nothing
// revealed. The deck must come from deck.Parse, which guarantees at
// least one slide.
func New(d *deck.Deck) *Controller {
	return &Controller{
		deck:     d,
		revealed: make(map[string]int),
	}
}

// Deck returns the deck under presentation.
func (c *Controller) Deck() *deck.Deck {
	return c.deck
}

// Index returns the current slide index, always within
// [0, SlideCount-1].
func (c *Controller) Index() int {
	return c.index
}

// Slide returns the slide at the current index.
func (c *Controller) Slide() *deck.Slide {
	s, _ := c.deck.Slide(c.index)
	return s
}

// Next advances to the following slide and reports whether the index
// moved. At the last slide it stays put: no wraparound.
func (c *Controller) Next() bool {
	if c.index < c.deck.SlideCount()-1 {
		c.index++
		return true
	}
	return false
}

// Prev steps back one slide and reports whether the index moved. At
// slide 0 it stays put.
func (c *Controller) Prev() bool {
	if c.index > 0 {
		c.index--
		return true
	}
	return false
}

// GoTo jumps directly to slide n and reports whether the jump was
// applied. Out-of-range requests leave the state unchanged.
func (c *Controller) GoTo(n int) bool {
	if n < 0 || n >= c.deck.SlideCount() {
		return false
	}
	c.index = n
	return true
}

// Progress returns exactly (index+1)/slideCount.
func (c *Controller) Progress() float64 {
	return float64(c.index+1) / float64(c.deck.SlideCount())
}

// Reveal marks the quiz item revealed without recording a choice and
// reports whether anything changed. Revealing an already-revealed
// item is a no-op; an item never re-hides. Unknown IDs are ignored.
func (c *Controller) Reveal(id string) bool {
	if _, _, ok := c.deck.Item(id); !ok {
		return false
	}
	if _, done := c.revealed[id]; done {
		return false
	}
	c.revealed[id] = NoChoice
	return true
}

// Answer reveals the quiz item with the chosen option recorded and
// reports whether anything changed. The first reveal locks the item:
// later calls never alter the recorded choice. A choice outside the
// item's option range reveals without recording one.
func (c *Controller) Answer(id string, choice int) bool {
	item, _, ok := c.deck.Item(id)
	if !ok {
		return false
	}
	if _, done := c.revealed[id]; done {
		return false
	}
	if choice < 0 || choice >= len(item.Options) {
		choice = NoChoice
	}
	c.revealed[id] = choice
	return true
}

// Revealed reports whether the quiz item has been revealed.
func (c *Controller) Revealed(id string) bool {
	_, ok := c.revealed[id]
	return ok
}

// Choice returns the option recorded for a revealed item. ok is false
// when the item is hidden or was revealed without a choice.
func (c *Controller) Choice(id string) (int, bool) {
	choice, ok := c.revealed[id]
	if !ok || choice == NoChoice {
		return 0, false
	}
	return choice, true
}

// RevealedCount returns how many quiz items have been revealed.
func (c *Controller) RevealedCount() int {
	return len(c.revealed)
}

// RevealedIDs returns the revealed item IDs in sorted order.
func (c *Controller) RevealedIDs() []string {
	ids := make([]string, 0, len(c.revealed))
	for id := range c.revealed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
