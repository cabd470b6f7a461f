// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types of the polls application.

# Question

A Question is a persisted record with text and a publication timestamp:

	q := models.Question{QuestionText: "What's new?", PubDate: time.Now()}

PubDate may lie in the future; such questions are scheduled and stay hidden
from the index and detail pages until their publication time.

# Recency

WasPublishedRecently takes the current time explicitly so it stays a pure
function of its inputs:

	q.WasPublishedRecently(time.Now())

It is true when PubDate lies in the half-open window (now - 24h, now].
A question published exactly 24 hours ago is no longer recent.
*/
package models
