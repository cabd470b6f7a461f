// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls pages.

# Handler Types

QuestionHandler serves the public pages. It is created with a store, a
renderer and a clock:

	h := handlers.NewQuestionHandler(st, renderer, time.Now)

The clock is read once per request, so a single page is always built from
one consistent "now".

# Pages

	GET /polls/      → Index (latest_question_list)
	GET /polls/{id}/ → Detail

Index lists every question whose pub_date is not after now, most recent
first, and shows "No polls available." when there are none.

Detail shows one question. Unknown IDs, malformed IDs and questions
scheduled for the future all answer 404.

# Errors

Store and template failures are logged with slog and answered with a
plain-text 500; details never reach the response body.
*/
package handlers
