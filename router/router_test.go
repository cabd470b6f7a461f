// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/testutil"
)

var testNow = time.Date(2025, 4, 10, 9, 30, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (*http.ServeMux, *store.SQLStore, *testutil.RecordingRenderer) {
	t.Helper()

	st := testutil.SetupTestStore(t)
	renderer := testutil.NewRecordingRenderer(t)
	mux := NewRouter(st, renderer, Options{Now: testutil.FixedClock(testNow)})
	return mux, st, renderer
}

func serve(mux *http.ServeMux, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	w := serve(mux, "GET", "/health")

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootRedirectsToIndex(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	w := serve(mux, "GET", "/")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/polls/", w.Header().Get("Location"))
}

func TestIndexByRouteName(t *testing.T) {
	mux, st, renderer := newTestRouter(t)
	testutil.CreateQuestion(t, st, "Future question", 30, testNow)
	testutil.CreateQuestion(t, st, "Past question", -30, testNow)

	path, err := Reverse(PollsIndex)
	require.NoError(t, err)

	w := serve(mux, "GET", path)

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Equal(t, []string{"Past question"}, testutil.QuestionTexts(renderer.LatestQuestionList(t)))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "pages are wrapped with request logging")
}

func TestIndexEmpty(t *testing.T) {
	mux, _, renderer := newTestRouter(t)

	w := serve(mux, "GET", "/polls/")

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "No polls available")
	assert.Empty(t, renderer.LatestQuestionList(t))
}

func TestDetailByRouteName(t *testing.T) {
	mux, st, _ := newTestRouter(t)
	past := testutil.CreateQuestion(t, st, "Past question", -1, testNow)
	future := testutil.CreateQuestion(t, st, "Future question", 1, testNow)

	path, err := Reverse(PollsDetail, strconv.FormatInt(past.ID, 10))
	require.NoError(t, err)
	w := serve(mux, "GET", path)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "Past question")

	path, err = Reverse(PollsDetail, strconv.FormatInt(future.ID, 10))
	require.NoError(t, err)
	w = serve(mux, "GET", path)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"POST", "/polls/"},
		{"DELETE", "/polls/1/"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := serve(mux, tc.method, tc.path)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPaths(t *testing.T) {
	mux, _, _ := newTestRouter(t)

	for _, path := range []string{"/polls/1/vote/", "/admin/", "/nothing"} {
		t.Run(path, func(t *testing.T) {
			w := serve(mux, "GET", path)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestReverse(t *testing.T) {
	testCases := []struct {
		name     string
		route    string
		args     []string
		expected string
		wantErr  bool
	}{
		{"index", PollsIndex, nil, "/polls/", false},
		{"detail", PollsDetail, []string{"42"}, "/polls/42/", false},
		{"detail escapes argument", PollsDetail, []string{"a b"}, "/polls/a%20b/", false},
		{"index with extra argument", PollsIndex, []string{"1"}, "", true},
		{"detail missing argument", PollsDetail, nil, "", true},
		{"unknown route", "polls:vote", nil, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := Reverse(tc.route, tc.args...)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrNoReverseMatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, path)
		})
	}
}
