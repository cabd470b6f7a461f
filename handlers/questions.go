// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/views"
)

type QuestionHandler struct {
	store    store.Store
	renderer views.Renderer
	now      func() time.Time
}

// NewQuestionHandler wires a handler to its store and renderer. now is read
// once per request; pass time.Now outside of tests.
func NewQuestionHandler(st store.Store, renderer views.Renderer, now func() time.Time) *QuestionHandler {
	if now == nil {
		now = time.Now
	}
	return &QuestionHandler{store: st, renderer: renderer, now: now}
}

// Index handles GET /polls/
// Lists every question published by now, most recent first
func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	questions, err := h.store.Find(r.Context(), store.Published(now))
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.render(w, views.IndexTemplate, views.Context{
		views.KeyLatestQuestionList: questions,
		views.KeyNow:                now,
	})
}

// Detail handles GET /polls/:id/
// Questions scheduled for the future are reported as not found
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	now := h.now()

	question, err := h.store.Get(r.Context(), store.Published(now).WithID(id))
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "question_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.render(w, views.DetailTemplate, views.Context{
		views.KeyQuestion: question,
		views.KeyNow:      now,
	})
}

// render buffers the page so a template error can still produce a 500
func (h *QuestionHandler) render(w http.ResponseWriter, name string, ctx views.Context) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, ctx); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response", "template", name, "error", err)
	}
}
