// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"io"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/views"
)

// Day is the unit of CreateQuestion's offset
const Day = 24 * time.Hour

// SetupTestDB creates a fresh SQLite database with the full schema.
// The file lives in the test's temp dir and is closed on cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	conn, dialect, err := db.Open(ctx, "sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a store over a fresh test database
func SetupTestStore(t *testing.T) *store.SQLStore {
	t.Helper()
	return store.NewSQLStore(SetupTestDB(t), db.SQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(t *testing.T) cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  filepath.Join(t.TempDir(), "cli.db"),
		DatabaseType: "sqlite",
		LogLevel:     "error",
		LogFormat:    "text",
	}
}

// FixedClock returns a clock that always reports now
func FixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

// CreateQuestion persists a question published the given number of days
// offset from now (negative for questions already published, positive for
// questions not yet published).
func CreateQuestion(t *testing.T, st store.Store, text string, days int, now time.Time) models.Question {
	t.Helper()

	q, err := st.Create(context.Background(), text, now.Add(time.Duration(days)*Day))
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return q
}

// QuestionTexts returns the display form of each question, in order
func QuestionTexts(questions []models.Question) []string {
	texts := make([]string, 0, len(questions))
	for _, q := range questions {
		texts = append(texts, q.String())
	}
	return texts
}

// RecordingRenderer renders through an inner renderer and keeps the context
// of the last call, so tests can inspect what a view handed to its template.
type RecordingRenderer struct {
	Inner views.Renderer

	mu       sync.Mutex
	template string
	context  views.Context
}

func NewRecordingRenderer(t *testing.T) *RecordingRenderer {
	t.Helper()

	inner, err := views.NewTemplateRenderer()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return &RecordingRenderer{Inner: inner}
}

func (r *RecordingRenderer) Render(w io.Writer, name string, ctx views.Context) error {
	r.mu.Lock()
	r.template = name
	r.context = ctx
	r.mu.Unlock()

	return r.Inner.Render(w, name, ctx)
}

// Template returns the name of the last rendered template
func (r *RecordingRenderer) Template() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.template
}

// Context returns the context of the last render, or nil before the first
func (r *RecordingRenderer) Context() views.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.context
}

// LatestQuestionList returns latest_question_list from the last render
func (r *RecordingRenderer) LatestQuestionList(t *testing.T) []models.Question {
	t.Helper()

	ctx := r.Context()
	if ctx == nil {
		t.Fatal("Nothing was rendered")
	}
	questions, ok := ctx[views.KeyLatestQuestionList].([]models.Question)
	if !ok {
		t.Fatalf("%s is %T, expected []models.Question", views.KeyLatestQuestionList, ctx[views.KeyLatestQuestionList])
	}
	return questions
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}
