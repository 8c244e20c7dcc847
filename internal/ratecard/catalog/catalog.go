// Package catalog holds the in-memory rate-card collection and the
// best-match resolution over it. It performs no I/O; mutations are applied
// by the owning service after confirmed persistence results.
package catalog

import (
	"time"

	"github.com/harborline/freightline/internal/ratecard/domain"
)

type Catalog struct {
	cards []domain.RateCard
}

func New() *Catalog {
	return &Catalog{}
}

// Load replaces the catalog wholesale. Last load wins; no merge logic.
func (c *Catalog) Load(cards []domain.RateCard) {
	replacement := make([]domain.RateCard, len(cards))
	for i, card := range cards {
		replacement[i] = card.Clone()
	}
	c.cards = replacement
}

// Upsert replaces a card in place when the id already exists, preserving
// its position; otherwise the card is prepended so the most recently
// touched rate surfaces first.
func (c *Catalog) Upsert(card domain.RateCard) {
	for i := range c.cards {
		if c.cards[i].ID == card.ID {
			c.cards[i] = card.Clone()
			return
		}
	}
	c.cards = append([]domain.RateCard{card.Clone()}, c.cards...)
}

// Remove deletes by id. Removing an absent id is a no-op.
func (c *Catalog) Remove(id string) {
	for i := range c.cards {
		if c.cards[i].ID == id {
			c.cards = append(c.cards[:i], c.cards[i+1:]...)
			return
		}
	}
}

// Get returns a copy of the card with the given id.
func (c *Catalog) Get(id string) (domain.RateCard, bool) {
	for i := range c.cards {
		if c.cards[i].ID == id {
			return c.cards[i].Clone(), true
		}
	}
	return domain.RateCard{}, false
}

// Cards returns a copy of the collection in catalog order.
func (c *Catalog) Cards() []domain.RateCard {
	out := make([]domain.RateCard, len(c.cards))
	for i, card := range c.cards {
		out[i] = card.Clone()
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.cards)
}

// FindBestMatch selects at most one rate card for the route, mode and date:
// only ACTIVE cards with an exact mode and a case-insensitive route match
// whose inclusive validity window contains date are candidates. Among
// candidates, CONTRACT outranks SPOT regardless of recency; within a type
// the most recent UpdatedAt wins; a full tie resolves to the card first
// encountered in catalog order. The query never mutates the catalog.
func (c *Catalog) FindBestMatch(pol, pod string, mode domain.TransportMode, date time.Time) (domain.RateCard, bool) {
	var best *domain.RateCard
	for i := range c.cards {
		card := &c.cards[i]
		if card.Status != domain.StatusActive || card.Mode != mode || !card.MatchesRoute(pol, pod) {
			continue
		}
		if !card.ValidOn(date) {
			continue
		}
		if best == nil || outranks(card, best) {
			best = card
		}
	}
	if best == nil {
		return domain.RateCard{}, false
	}
	return best.Clone(), true
}

func outranks(candidate, incumbent *domain.RateCard) bool {
	if candidate.Type != incumbent.Type {
		return candidate.Type == domain.Contract
	}
	return candidate.UpdatedAt.After(incumbent.UpdatedAt)
}
