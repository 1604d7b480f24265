package server

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/repify/repify/contact"
	"github.com/repify/repify/logger"
	"github.com/repify/repify/page"
	"github.com/repify/repify/script"
)

const (
	errTopicRequired = "topic is required"
	errInvalidBody   = "invalid request body"
)

var errTopicTooLong = "topic must be at most " + strconv.Itoa(script.MaxTopicLength) + " characters"

type errorResponse struct {
	Error string `json:"error"`
}

type scriptRequest struct {
	Topic string `json:"topic"`
}

type handlers struct {
	deps Deps
}

func (h *handlers) landing(c echo.Context) error {
	var buf bytes.Buffer
	if err := page.Render(&buf, h.deps.Copy, h.deps.Now().Year()); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (h *handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// generateScript never calls the generator for a blank topic
func (h *handlers) generateScript(c echo.Context) error {
	var req scriptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: errInvalidBody})
	}

	if strings.TrimSpace(req.Topic) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: errTopicRequired})
	}
	if utf8.RuneCountInString(req.Topic) > script.MaxTopicLength {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: errTopicTooLong})
	}

	result := h.deps.Generator.Generate(c.Request().Context(), req.Topic)
	if result.Failed() {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: result.Error})
	}
	return c.JSON(http.StatusOK, result)
}

// contact always sends the visitor on to the calendar. The lead is delivered
// in the background so a slow webhook never delays the redirect.
func (h *handlers) contact(c echo.Context) error {
	lead := contact.Lead{
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		Goal:        c.FormValue("goal"),
		SubmittedAt: h.deps.Now().UTC(),
	}.Normalize()

	if h.deps.Forwarder != nil {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), h.deps.ForwardDeadline)
		go func() {
			defer cancel()
			h.forward(ctx, lead)
		}()
	}

	return c.Redirect(http.StatusSeeOther, h.deps.Copy.CalendarURL)
}

func (h *handlers) forward(ctx context.Context, lead contact.Lead) {
	status, err := h.deps.Forwarder.Forward(ctx, lead)
	if err != nil {
		logger.Warnf("Failed to forward lead: %v", err)
		return
	}
	logger.Debugf("Lead %s", status)
}
