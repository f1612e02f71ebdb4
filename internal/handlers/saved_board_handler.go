package handlers

import (
	"github.com/anonto42/localflow/internal/middleware"
	"github.com/anonto42/localflow/internal/repositories"
	"github.com/anonto42/localflow/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// SavedBoardHandler handles bookmarking boards.
type SavedBoardHandler struct {
	boards    repositories.BoardRepository
	bookmarks repositories.BookmarkRepository
	cards     *cardStore
	metrics   metrics.Recorder
	log       *logrus.Logger
}

func NewSavedBoardHandler(boards repositories.BoardRepository, likes repositories.LikeRepository, bookmarks repositories.BookmarkRepository, rec metrics.Recorder, log *logrus.Logger) *SavedBoardHandler {
	return &SavedBoardHandler{
		boards:    boards,
		bookmarks: bookmarks,
		cards:     newCardStore(likes, bookmarks),
		metrics:   rec,
		log:       log,
	}
}

func (h *SavedBoardHandler) RegisterSavedBoardRoutes(g *echo.Group) {
	g.POST("/:id/bookmark", h.ToggleBookmark)
}

// ToggleBookmark flips the viewer's bookmark on a board.
func (h *SavedBoardHandler) ToggleBookmark(c echo.Context) error {
	ctx := c.Request().Context()
	profileID := middleware.ProfileID(c)

	card, err := loadCard(c, h.boards, h.cards)
	if err != nil {
		return err
	}

	want := card.ToggleBookmark()
	if want.Bookmarked {
		err = h.bookmarks.Bookmark(ctx, card.BoardID, profileID)
	} else {
		err = h.bookmarks.Unbookmark(ctx, card.BoardID, profileID)
	}
	if err != nil {
		return err
	}

	server, err := h.cards.state(ctx, card.BoardID, profileID)
	if err != nil {
		return err
	}
	card.Reconcile(server)
	h.metrics.RecordBoardToggle("bookmark", want.Bookmarked)
	h.log.WithFields(logrus.Fields{"board_id": card.BoardID, "profile_id": profileID, "bookmarked": want.Bookmarked}).Debug("board bookmark toggled")

	return toggleResponse(c, card)
}
