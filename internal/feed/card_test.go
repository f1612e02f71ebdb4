package feed

import (
	"testing"

	"github.com/anonto42/localflow/internal/models"
)

func TestToggleLikeIsOptimistic(t *testing.T) {
	c := NewCard(models.Board{ID: 1}, State{Likes: 4})

	got := c.ToggleLike()
	if !got.Liked || got.Likes != 5 || !c.Pending() {
		t.Errorf("after like: %+v pending=%v", got, c.Pending())
	}
	got = c.ToggleLike()
	if got.Liked || got.Likes != 4 {
		t.Errorf("after unlike: %+v", got)
	}
}

func TestToggleLikeNeverNegative(t *testing.T) {
	c := NewCard(models.Board{ID: 1}, State{Liked: true, Likes: 0})
	if got := c.ToggleLike(); got.Likes != 0 || got.Liked {
		t.Errorf("got %+v", got)
	}
}

func TestToggleBookmarkKeepsLikes(t *testing.T) {
	c := NewCard(models.Board{ID: 1}, State{Liked: true, Likes: 3})
	got := c.ToggleBookmark()
	if !got.Bookmarked || !got.Liked || got.Likes != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestReconcileServerWins(t *testing.T) {
	c := NewCard(models.Board{ID: 1}, State{Likes: 10})
	c.ToggleLike()
	c.ToggleBookmark()

	server := State{Liked: false, Bookmarked: false, Likes: 12}
	c.Reconcile(server)
	if c.Pending() {
		t.Error("override should be dropped")
	}
	if c.View() != server {
		t.Errorf("view = %+v, want %+v", c.View(), server)
	}
}

func TestCards(t *testing.T) {
	boards := []models.Board{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	cards := Cards(boards, map[int64]bool{2: true}, map[int64]bool{1: true}, map[int64]int64{2: 7})
	if len(cards) != 2 {
		t.Fatalf("len = %d", len(cards))
	}
	if v := cards[0].View(); v.Liked || !v.Bookmarked || v.Likes != 0 {
		t.Errorf("card 1 = %+v", v)
	}
	if v := cards[1].View(); !v.Liked || v.Bookmarked || v.Likes != 7 {
		t.Errorf("card 2 = %+v", v)
	}
}
