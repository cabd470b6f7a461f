// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls application.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, renderer, router.Options{})

# Endpoints

	GET /health      - Liveness check
	GET /            - Redirects to the polls index
	GET /polls/      - Index of published questions (polls:index)
	GET /polls/{id}/ - Question detail (polls:detail)

# Named Routes

Reverse resolves a route name to a path:

	path, _ := router.Reverse(router.PollsIndex)        // "/polls/"
	path, _ := router.Reverse(router.PollsDetail, "42") // "/polls/42/"

Unknown names or a wrong number of arguments return ErrNoReverseMatch.

# Clock

Options.Now supplies the current time to the handlers. Tests pin it to a
fixed instant; production leaves it nil for time.Now.
*/
package router
