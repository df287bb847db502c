package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanes/internal/board"
	"lanes/internal/storage"
)

// memStore keeps the rendered document in memory, standing in for the
// file and S3 stores.
type memStore struct {
	text   string
	exists bool
}

func (m *memStore) Load(context.Context) (*board.Kanban, error) {
	if !m.exists {
		return nil, storage.ErrNotFound
	}
	return board.Parse(m.text)
}

func (m *memStore) Save(_ context.Context, k *board.Kanban) error {
	m.text = k.Render()
	m.exists = true
	return nil
}

func (m *memStore) Location() string { return "mem" }

func newTestServer(t *testing.T, document string) (*Server, *memStore) {
	t.Helper()
	store := &memStore{text: document, exists: true}
	logger := log.New(io.Discard)
	return New(store, logger), store
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGetBoard(t *testing.T) {
	srv, _ := newTestServer(t, "## To Do\n\n- [ ] First\n- [x] Second @{2024-01-15}\n")

	req := httptest.NewRequest("GET", "/api/board", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp boardJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"To Do"}, resp.Columns)
	require.Len(t, resp.Cards, 2)
	assert.Equal(t, cardJSON{Column: "To Do", Status: " ", Title: "First"}, resp.Cards[0])
	assert.Equal(t, cardJSON{Column: "To Do", Status: "x", Title: "Second", Date: "2024-01-15"}, resp.Cards[1])
}

func TestGetBoardMissing(t *testing.T) {
	srv, store := newTestServer(t, "")
	store.exists = false

	req := httptest.NewRequest("GET", "/api/board", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDocument(t *testing.T) {
	srv, _ := newTestServer(t, "## To Do\n\n- [ ] Task\n")

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "## To Do\n\n- [ ] Task\n", rec.Body.String())
}

func TestAddColumn(t *testing.T) {
	srv, store := newTestServer(t, "## To Do\n")

	rec := postJSON(t, srv.Handler(), "/api/columns", map[string]string{"name": "Done"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, store.text, "## Done")
}

func TestAddColumnBadPayload(t *testing.T) {
	srv, _ := newTestServer(t, "## To Do\n")

	rec := postJSON(t, srv.Handler(), "/api/columns", map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddCard(t *testing.T) {
	srv, store := newTestServer(t, "## To Do\n")

	rec := postJSON(t, srv.Handler(), "/api/cards", cardJSON{
		Column: "To Do", Title: "New task", Date: "2024-06-01",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, store.text, "- [ ] New task @{2024-06-01}")
}

func TestAddCardUnknownColumn(t *testing.T) {
	srv, store := newTestServer(t, "## To Do\n")
	before := store.text

	rec := postJSON(t, srv.Handler(), "/api/cards", cardJSON{Column: "Archive", Title: "Task"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before, store.text, "a failed add must not rewrite the document")
}

func TestAddCardMissingTitle(t *testing.T) {
	srv, _ := newTestServer(t, "## To Do\n")

	rec := postJSON(t, srv.Handler(), "/api/cards", cardJSON{Column: "To Do"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddCardInvalidStatus(t *testing.T) {
	srv, _ := newTestServer(t, "## To Do\n")

	rec := postJSON(t, srv.Handler(), "/api/cards", cardJSON{Column: "To Do", Title: "Task", Status: "?"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoveCard(t *testing.T) {
	srv, store := newTestServer(t, "## To Do\n\n- [ ] Task\n\n## Done\n")

	rec := postJSON(t, srv.Handler(), "/api/cards/move", map[string]any{
		"target": "Done",
		"card":   cardJSON{Column: "To Do", Title: "Task"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	k, err := board.Parse(store.text)
	require.NoError(t, err)
	require.Len(t, k.CardsIn("Done"), 1)
	assert.Empty(t, k.CardsIn("To Do"))
}

func TestMoveCardUnknownTarget(t *testing.T) {
	srv, store := newTestServer(t, "## To Do\n\n- [ ] Task\n")
	before := store.text

	rec := postJSON(t, srv.Handler(), "/api/cards/move", map[string]any{
		"target": "Archive",
		"card":   cardJSON{Column: "To Do", Title: "Task"},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before, store.text)
}
