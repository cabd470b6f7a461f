package models

import "time"

// RecencyWindow is how long after publication a question counts as recent.
const RecencyWindow = 24 * time.Hour

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text" validate:"required,max=200"`
	PubDate      time.Time `json:"pub_date"`
}

// WasPublishedRecently reports whether PubDate lies in (now - RecencyWindow, now].
// Questions scheduled for the future are never recent.
func (q Question) WasPublishedRecently(now time.Time) bool {
	if q.PubDate.After(now) {
		return false
	}
	return now.Sub(q.PubDate) < RecencyWindow
}

// IsPublished reports whether the question is visible at now.
func (q Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

func (q Question) String() string {
	return q.QuestionText
}
