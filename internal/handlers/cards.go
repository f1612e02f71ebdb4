package handlers

import (
	"context"

	"github.com/anonto42/localflow/internal/feed"
	"github.com/anonto42/localflow/internal/models"
	"github.com/anonto42/localflow/internal/repositories"
)

// cardStore reads the per-viewer state behind feed cards.
type cardStore struct {
	likes     repositories.LikeRepository
	bookmarks repositories.BookmarkRepository
}

func newCardStore(likes repositories.LikeRepository, bookmarks repositories.BookmarkRepository) *cardStore {
	return &cardStore{likes: likes, bookmarks: bookmarks}
}

// cards batches the like counts, and for a signed-in viewer the liked and
// bookmarked sets, for one page of boards.
func (s *cardStore) cards(ctx context.Context, boards []models.Board, profileID string) ([]*feed.Card, error) {
	ids := make([]int64, 0, len(boards))
	for _, b := range boards {
		ids = append(ids, b.ID)
	}

	likes, err := s.likes.CountLikesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	var liked, bookmarked map[int64]bool
	if profileID != "" {
		if liked, err = s.likes.LikedBoardIDs(ctx, profileID, ids); err != nil {
			return nil, err
		}
		if bookmarked, err = s.bookmarks.BookmarkedBoardIDs(ctx, profileID, ids); err != nil {
			return nil, err
		}
	}
	return feed.Cards(boards, liked, bookmarked, likes), nil
}

// state reads the server truth of one card.
func (s *cardStore) state(ctx context.Context, boardID int64, profileID string) (feed.State, error) {
	var st feed.State
	var err error
	if st.Likes, err = s.likes.CountLikes(ctx, boardID); err != nil {
		return st, err
	}
	if st.Liked, err = s.likes.HasLiked(ctx, boardID, profileID); err != nil {
		return st, err
	}
	if st.Bookmarked, err = s.bookmarks.IsBookmarked(ctx, boardID, profileID); err != nil {
		return st, err
	}
	return st, nil
}

type cardView struct {
	*feed.Card
	feed.State
}

func cardViews(cards []*feed.Card) []cardView {
	views := make([]cardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, cardView{Card: c, State: c.View()})
	}
	return views
}
