package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anonto42/localflow/internal/feed"
	"github.com/anonto42/localflow/internal/middleware"
	"github.com/anonto42/localflow/internal/models"
	"github.com/anonto42/localflow/internal/repositories"
	"github.com/anonto42/localflow/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LikeHandler handles HTTP requests related to board likes
type LikeHandler struct {
	boards  repositories.BoardRepository
	likes   repositories.LikeRepository
	cards   *cardStore
	metrics metrics.Recorder
	log     *logrus.Logger
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(boards repositories.BoardRepository, likes repositories.LikeRepository, bookmarks repositories.BookmarkRepository, rec metrics.Recorder, log *logrus.Logger) *LikeHandler {
	return &LikeHandler{
		boards:  boards,
		likes:   likes,
		cards:   newCardStore(likes, bookmarks),
		metrics: rec,
		log:     log,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/:id/like", h.ToggleLike)
}

// ToggleLike flips the viewer's like on a board. The desired state is
// persisted, then the card is reconciled with a fresh read.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	ctx := c.Request().Context()
	profileID := middleware.ProfileID(c)

	card, err := loadCard(c, h.boards, h.cards)
	if err != nil {
		return err
	}

	want := card.ToggleLike()
	if want.Liked {
		err = h.likes.Like(ctx, card.BoardID, profileID)
	} else {
		err = h.likes.Unlike(ctx, card.BoardID, profileID)
	}
	if err != nil {
		return err
	}

	server, err := h.cards.state(ctx, card.BoardID, profileID)
	if err != nil {
		return err
	}
	card.Reconcile(server)
	h.metrics.RecordBoardToggle("like", want.Liked)
	h.log.WithFields(logrus.Fields{"board_id": card.BoardID, "profile_id": profileID, "liked": want.Liked}).Debug("board like toggled")

	return toggleResponse(c, card)
}

// loadCard reads the board named by the :id parameter and the viewer's
// current state of it.
func loadCard(c echo.Context, boards repositories.BoardRepository, store *cardStore) (*feed.Card, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid board id")
	}
	ctx := c.Request().Context()

	board, err := boards.GetBoardByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Board not found")
		}
		return nil, err
	}
	if board.Status != models.StatusPublished {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Board not found")
	}

	server, err := store.state(ctx, id, middleware.ProfileID(c))
	if err != nil {
		return nil, err
	}
	return feed.NewCard(*board, server), nil
}

func toggleResponse(c echo.Context, card *feed.Card) error {
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": card.View()})
	}
	return c.Redirect(http.StatusSeeOther, localPath(refererPath(c), "/board/search"))
}
