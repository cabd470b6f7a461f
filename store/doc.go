// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store loads and persists questions.

# Queries

A QuestionQuery is a plain value describing a filter and a sort order. It is
built up front and evaluated eagerly by the store:

	questions, err := st.Find(ctx, store.Published(now))

Published(now) matches questions whose pub_date is not after now, newest
first. It backs both the index page and, narrowed with WithID, the detail
page.

# Persistence

SQLStore runs queries through database/sql for any supported dialect.
Timestamps are written in UTC at microsecond precision.

Create validates the text (required, at most 200 characters) before
inserting and wraps ErrInvalidQuestion on failure. Get returns ErrNotFound
when nothing matches.
*/
package store
