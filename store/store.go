// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
)

var (
	ErrNotFound        = errors.New("question not found")
	ErrInvalidQuestion = errors.New("invalid question")
)

type Store interface {
	Create(ctx context.Context, text string, pubDate time.Time) (models.Question, error)
	Find(ctx context.Context, q QuestionQuery) ([]models.Question, error)
	Get(ctx context.Context, q QuestionQuery) (models.Question, error)
}

// SQLStore persists questions through database/sql
type SQLStore struct {
	db       *sql.DB
	dialect  db.Dialect
	validate *validator.Validate
}

var _ Store = (*SQLStore)(nil)

func NewSQLStore(conn *sql.DB, dialect db.Dialect) *SQLStore {
	return &SQLStore{
		db:       conn,
		dialect:  dialect,
		validate: validator.New(),
	}
}

// Create validates and inserts a question, returning it with its new ID
func (s *SQLStore) Create(ctx context.Context, text string, pubDate time.Time) (models.Question, error) {
	q := models.Question{
		QuestionText: text,
		PubDate:      normalizeTime(pubDate),
	}

	if err := s.validate.Struct(q); err != nil {
		return models.Question{}, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}

	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(`
		INSERT INTO question (question_text, pub_date)
		VALUES (?, ?)
		RETURNING id
	`), q.QuestionText, q.PubDate).Scan(&q.ID)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}

	return q, nil
}

// Find runs the query and returns matching questions. The result is never nil.
func (s *SQLStore) Find(ctx context.Context, q QuestionQuery) ([]models.Question, error) {
	query, args := q.SQL()

	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var question models.Question
		if err := rows.Scan(&question.ID, &question.QuestionText, &question.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		question.PubDate = question.PubDate.UTC()
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}

// Get returns the first question matching q, or ErrNotFound
func (s *SQLStore) Get(ctx context.Context, q QuestionQuery) (models.Question, error) {
	q.Limit = 1
	questions, err := s.Find(ctx, q)
	if err != nil {
		return models.Question{}, err
	}
	if len(questions) == 0 {
		return models.Question{}, ErrNotFound
	}
	return questions[0], nil
}
