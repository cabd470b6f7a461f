// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the HTML pages of the polls application.

# Rendering

Handlers hand a Context to a Renderer:

	renderer.Render(w, views.IndexTemplate, views.Context{
		views.KeyLatestQuestionList: questions,
		views.KeyNow:                now,
	})

TemplateRenderer executes templates embedded from templates/polls. Tests may
substitute a Renderer that records the Context it was given.

# Templates

  - polls/index.html: latest_question_list, or "No polls available." when empty
  - polls/detail.html: a single question

Both extend polls/base.html. Template helpers:

  - since: humanized time relative to now ("3 days ago")
  - recent: Question.WasPublishedRecently at now
*/
package views
