package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridebook/internal/pkg/feed"
	"github.com/piresc/ridebook/internal/utils"
)

// FeedReader hands out the pending navigation and toasts of a role
type FeedReader interface {
	Drain(role string) feed.Snapshot
}

// FeedHandler serves the navigation and toast feed of one role
type FeedHandler struct {
	feed FeedReader
}

// NewFeedHandler creates a new feed HTTP handler
func NewFeedHandler(f FeedReader) *FeedHandler {
	return &FeedHandler{feed: f}
}

// Drain returns and clears what the role's screen has not seen yet
func (h *FeedHandler) Drain(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return utils.SuccessResponse(c, http.StatusOK, "", h.feed.Drain(role))
	}
}
