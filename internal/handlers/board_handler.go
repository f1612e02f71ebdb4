package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/anonto42/localflow/internal/feed"
	"github.com/anonto42/localflow/internal/middleware"
	"github.com/anonto42/localflow/internal/repositories"
	"github.com/anonto42/localflow/internal/search"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type selectPage struct {
	Filter    search.Filter
	Alert     string
	DateError string
}

type boardSearchPage struct {
	Filter     search.Filter
	Cards      []*feed.Card
	Pagination feed.Pagination
	Query      template.URL
}

// BoardHandler serves the trip selection page and the board search results.
type BoardHandler struct {
	boards       repositories.BoardRepository
	cards        *cardStore
	codec        *search.StateCodec
	shell        *Shell
	cookieSecure bool
	log          *logrus.Logger
}

func NewBoardHandler(boards repositories.BoardRepository, likes repositories.LikeRepository, bookmarks repositories.BookmarkRepository, codec *search.StateCodec, shell *Shell, cookieSecure bool, log *logrus.Logger) *BoardHandler {
	return &BoardHandler{
		boards:       boards,
		cards:        newCardStore(likes, bookmarks),
		codec:        codec,
		shell:        shell,
		cookieSecure: cookieSecure,
		log:          log,
	}
}

func (h *BoardHandler) RegisterBoardRoutes(e *echo.Echo) {
	e.GET("/select", h.SelectPage)
	e.POST("/select", h.Select)
	e.GET("/board/search", h.Search)
}

// SelectPage renders the selection page with the default location.
func (h *BoardHandler) SelectPage(c echo.Context) error {
	return h.renderSelect(c, http.StatusOK, selectPage{Filter: search.DefaultFilter()})
}

// Select applies one field change, a quick date pick, or starts the search.
func (h *BoardHandler) Select(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	page := selectPage{Filter: search.FromValues(params)}

	action := params.Get("action")
	if days := params.Get("days"); days != "" && action != "set" {
		action = "quick"
	}

	switch action {
	case "set":
		if err := page.Filter.Set(params.Get("field"), params.Get("value")); err != nil {
			if errors.Is(err, search.ErrUnknownField) {
				return echo.NewHTTPError(http.StatusBadRequest, "Unknown filter field")
			}
			page.DateError = "Please enter a valid date."
			return h.renderSelect(c, http.StatusBadRequest, page)
		}
		return h.renderSelect(c, http.StatusOK, page)
	case "quick":
		days, err := strconv.Atoi(params.Get("days"))
		if err != nil || days < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid trip length")
		}
		page.Filter.TravelDates.QuickSelect(days)
		return h.renderSelect(c, http.StatusOK, page)
	}

	if err := page.Filter.RequireLocation(); err != nil {
		page.Alert = search.LocationRequiredAlert
		return h.renderSelect(c, http.StatusBadRequest, page)
	}
	if err := page.Filter.TravelDates.Validate(); err != nil {
		page.DateError = "The end date must not be before the start date."
		return h.renderSelect(c, http.StatusBadRequest, page)
	}
	return h.handOff(c, page.Filter)
}

// Search lists published boards matching the navigation state. A "field"
// parameter is a filter bar change: it is applied and the search restarts
// on page 1. The state cookie serves one results page and is cleared once read.
func (h *BoardHandler) Search(c echo.Context) error {
	query := c.QueryParams()
	f, hadState := resultsFilter(c, query)

	if field := query.Get("field"); field != "" {
		if err := f.Set(field, query.Get("value")); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown filter field")
		}
		return h.handOff(c, f)
	}
	if hadState {
		h.setState(c, "", -1)
	}
	if err := f.RequireLocation(); err != nil {
		return c.Redirect(http.StatusSeeOther, "/select")
	}

	ctx := c.Request().Context()
	current := search.PageFrom(query)
	boards, total, err := h.boards.Search(ctx, f.Query(), current, feed.ItemsPerPage)
	if err != nil {
		return err
	}
	pagination := feed.NewPagination(current, total, feed.ItemsPerPage)
	if pagination.CurrentPage != current {
		boards, _, err = h.boards.Search(ctx, f.Query(), pagination.CurrentPage, feed.ItemsPerPage)
		if err != nil {
			return err
		}
	}
	cards, err := h.cards.cards(ctx, boards, middleware.ProfileID(c))
	if err != nil {
		return err
	}

	data := boardSearchPage{
		Filter:     f,
		Cards:      cards,
		Pagination: pagination,
		Query:      template.URL(f.Values().Encode()),
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{
			"cards":      cardViews(cards),
			"pagination": data.Pagination,
		}})
	}

	page := h.shell.Page(c, f.Location(), data)
	page.Nav.SearchText = f.Location()
	return c.Render(http.StatusOK, "board_search", page)
}

// handOff stores the filter in the signed state cookie and moves to the
// results page, which also carries the filter in its query string.
func (h *BoardHandler) handOff(c echo.Context, f search.Filter) error {
	token, err := h.codec.Encode(f)
	if err != nil {
		return err
	}
	h.setState(c, token, int(h.codec.TTL().Seconds()))
	h.log.WithFields(logrus.Fields{"region": f.Region, "city": f.City}).Debug("search state issued")
	return c.Redirect(http.StatusSeeOther, resultsURL(f.Values()))
}

func (h *BoardHandler) setState(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     search.StateCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// resultsFilter prefers the navigation state unless the query string names
// another location. The second result reports whether a state was present.
func resultsFilter(c echo.Context, query url.Values) (search.Filter, bool) {
	f := search.FromValues(query)
	state, ok := middleware.SearchFilter(c)
	if !ok {
		return f, false
	}
	if (f.Region == "" && f.City == "") || (f.Region == state.Region && f.City == state.City) {
		return state, true
	}
	return f, true
}

func resultsURL(v url.Values) string {
	return "/board/search?" + v.Encode()
}

func (h *BoardHandler) renderSelect(c echo.Context, status int, page selectPage) error {
	return h.shell.Render(c, status, "select", "Plan a trip", page)
}
