package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MilesT98/Actify-2/schema"
	"github.com/MilesT98/Actify-2/store"
)

func TestVoteSubmission(t *testing.T) {
	s, mockStore := newTestServer(t)

	mockStore.EXPECT().
		VoteSubmission("sub-1", schema.Vote{UserID: "alice", Rating: 4}).
		Return(nil)

	body := `{"user_id": "alice", "rating": 4}`
	req := httptest.NewRequest(http.MethodPost, "/api/submissions/sub-1/vote", strings.NewReader(body))
	w := serve(s, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"result":"OK"`)
}

func TestVoteSubmissionInvalidRating(t *testing.T) {
	s, _ := newTestServer(t)

	for _, body := range []string{
		`{"user_id": "alice", "rating": 0}`,
		`{"user_id": "alice", "rating": 6}`,
		`{"user_id": "alice"}`,
		`{"rating": 3}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/submissions/sub-1/vote", strings.NewReader(body))
		w := serve(s, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestVoteSubmissionNotFound(t *testing.T) {
	s, mockStore := newTestServer(t)

	mockStore.EXPECT().
		VoteSubmission("missing", schema.Vote{UserID: "alice", Rating: 5}).
		Return(store.ErrSubmissionNotFound)

	body := `{"user_id": "alice", "rating": 5}`
	req := httptest.NewRequest(http.MethodPost, "/api/submissions/missing/vote", strings.NewReader(body))
	w := serve(s, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReactSubmission(t *testing.T) {
	s, mockStore := newTestServer(t)

	mockStore.EXPECT().
		ReactSubmission("sub-1", schema.Reaction{UserID: "bob", Emoji: "🔥"}).
		Return(nil)

	body := `{"user_id": "bob", "emoji": "🔥"}`
	req := httptest.NewRequest(http.MethodPost, "/api/submissions/sub-1/react", strings.NewReader(body))
	w := serve(s, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateSubmissionRequiresBothPhotos(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{
		"user_id": "alice",
		"activity": "morning run",
		"photos": {"front": "front.jpg", "back": ""}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(body))
	w := serve(s, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSubmissionGroupRequiresMembership(t *testing.T) {
	s, mockStore := newTestServer(t)

	mockStore.EXPECT().
		GetGroup("group-1").
		Return(&schema.Group{ID: "group-1", Members: []string{"bob"}}, nil)

	body := `{
		"user_id": "alice",
		"type": "group",
		"group_id": "group-1",
		"activity": "morning run",
		"photos": {"front": "front.jpg", "back": "back.jpg"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(body))
	w := serve(s, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSubmission(t *testing.T) {
	s, mockStore := newTestServer(t)

	mockStore.EXPECT().
		CreateSubmission(schema.Submission{
			UserID:   "alice",
			UserName: "Alice",
			Kind:     schema.SubmissionKindGlobal,
			Activity: "morning run",
			Photos:   schema.SubmissionPhotos{Front: "front.jpg", Back: "back.jpg"},
		}).
		Return(&schema.Submission{ID: "sub-1", UserID: "alice"}, nil)

	body := `{
		"user_id": "alice",
		"user_name": "Alice",
		"activity": "morning run",
		"photos": {"front": "front.jpg", "back": "back.jpg"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(body))
	w := serve(s, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"sub-1"`)
}
