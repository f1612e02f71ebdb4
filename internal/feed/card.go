// Package feed builds the board cards of the results page and tracks the
// optimistic like and bookmark state of each card.
package feed

import (
	"github.com/anonto42/localflow/internal/models"
)

// State is what a card shows for its viewer.
type State struct {
	Liked      bool  `json:"liked"`
	Bookmarked bool  `json:"bookmarked"`
	Likes      int64 `json:"likes"`
}

// Card pairs the last known server state with an optional local override
// produced by toggles that have not been confirmed yet.
type Card struct {
	BoardID   int64  `json:"board_id"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	Thumbnail string `json:"thumbnail_image"`
	Theme     string `json:"theme"`

	server   State
	override *State
}

func NewCard(board models.Board, server State) *Card {
	return &Card{
		BoardID:   board.ID,
		Title:     board.Title,
		Location:  board.Location,
		Thumbnail: board.ThumbnailImage,
		Theme:     board.Theme,
		server:    server,
	}
}

// View returns the override when one exists, otherwise the server state.
func (c *Card) View() State {
	if c.override != nil {
		return *c.override
	}
	return c.server
}

// Pending reports an unconfirmed local change.
func (c *Card) Pending() bool {
	return c.override != nil
}

// ToggleLike flips the liked flag and adjusts the count shown.
func (c *Card) ToggleLike() State {
	next := c.View()
	if next.Liked {
		next.Liked = false
		if next.Likes > 0 {
			next.Likes--
		}
	} else {
		next.Liked = true
		next.Likes++
	}
	c.override = &next
	return next
}

func (c *Card) ToggleBookmark() State {
	next := c.View()
	next.Bookmarked = !next.Bookmarked
	c.override = &next
	return next
}

// Reconcile adopts a fresh server state and drops any override, so the
// server wins over local changes on every full fetch.
func (c *Card) Reconcile(server State) {
	c.server = server
	c.override = nil
}

// Cards builds one card per board from batch lookups keyed by board id.
func Cards(boards []models.Board, liked, bookmarked map[int64]bool, likes map[int64]int64) []*Card {
	cards := make([]*Card, 0, len(boards))
	for _, b := range boards {
		cards = append(cards, NewCard(b, State{
			Liked:      liked[b.ID],
			Bookmarked: bookmarked[b.ID],
			Likes:      likes[b.ID],
		}))
	}
	return cards
}
