// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/views"
)

// Route names
const (
	PollsIndex  = "polls:index"
	PollsDetail = "polls:detail"
)

var ErrNoReverseMatch = errors.New("no reverse match")

// routes maps route names to path templates; {name} segments are filled by Reverse
var routes = map[string]string{
	PollsIndex:  "/polls/",
	PollsDetail: "/polls/{id}/",
}

// Options configures NewRouter. A nil Now uses time.Now.
type Options struct {
	Now func() time.Time
}

func NewRouter(st store.Store, renderer views.Renderer, opts Options) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(st, renderer, opts.Now)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls pages
	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(questionHandler.Index))
	mux.HandleFunc("GET /polls/{id}/{$}", middleware.WithLogging(questionHandler.Detail))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routes[PollsIndex], http.StatusFound)
	})

	return mux
}

// Reverse resolves a route name to its path, filling {param} segments from
// args in order.
func Reverse(name string, args ...string) (string, error) {
	pattern, ok := routes[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown route %q", ErrNoReverseMatch, name)
	}

	segments := strings.Split(pattern, "/")
	used := 0
	for i, seg := range segments {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			continue
		}
		if used >= len(args) {
			return "", fmt.Errorf("%w: %s expects more arguments", ErrNoReverseMatch, name)
		}
		segments[i] = url.PathEscape(args[used])
		used++
	}
	if used != len(args) {
		return "", fmt.Errorf("%w: %s takes %d arguments, got %d", ErrNoReverseMatch, name, used, len(args))
	}

	return strings.Join(segments, "/"), nil
}
