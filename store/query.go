// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"strconv"
	"strings"
	"time"
)

// Order selects how questions are sorted by pub_date.
type Order int

const (
	Unordered Order = iota
	NewestFirst
	OldestFirst
)

// QuestionQuery describes which questions to load and in what order.
// The zero value matches every question, unordered.
type QuestionQuery struct {
	ID          int64     // 0 matches any ID
	PublishedBy time.Time // zero means no upper bound on pub_date
	Order       Order
	Limit       int // 0 means no limit
}

// Published returns the questions visible at now, most recent first.
func Published(now time.Time) QuestionQuery {
	return QuestionQuery{PublishedBy: now, Order: NewestFirst}
}

// WithID narrows the query to a single question
func (q QuestionQuery) WithID(id int64) QuestionQuery {
	q.ID = id
	return q
}

// SQL renders the query with '?' placeholders and its arguments.
func (q QuestionQuery) SQL() (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString("SELECT id, question_text, pub_date FROM question")

	var where []string
	if q.ID != 0 {
		where = append(where, "id = ?")
		args = append(args, q.ID)
	}
	if !q.PublishedBy.IsZero() {
		where = append(where, "pub_date <= ?")
		args = append(args, normalizeTime(q.PublishedBy))
	}
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}

	switch q.Order {
	case NewestFirst:
		b.WriteString(" ORDER BY pub_date DESC, id DESC")
	case OldestFirst:
		b.WriteString(" ORDER BY pub_date ASC, id ASC")
	}

	if q.Limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.Limit))
	}

	return b.String(), args
}

// normalizeTime stores every timestamp in UTC at microsecond precision, the
// finest resolution PostgreSQL keeps.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
