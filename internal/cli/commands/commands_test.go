package commands

import (
	"Enderbrary/internal/config"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOut подменяет writer вывода CLI на время теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := Out
	Out = buf
	t.Cleanup(func() { Out = prev })
	return buf
}

func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL: serverURL,
		TokenFile: filepath.Join(t.TempDir(), "token"),
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), testConfig(t, "http://localhost:0"), []string{"frobnicate"})
	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "Unknown command: frobnicate")
}

func TestDispatch_HelpListsCommands(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), testConfig(t, "http://localhost:0"), []string{"help"})
	assert.Equal(t, 0, code)
	for _, name := range []string{"borrow", "approve", "reject", "return", "complete", "books", "token", "requests", "incoming", "lent"} {
		assert.Contains(t, buf.String(), name)
	}
}

func TestDispatch_UsageOnBadArgs(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), testConfig(t, "http://localhost:0"), []string{"borrow"})
	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "Usage: borrow <bookId>")
}

func TestTokenCommand_SavesToken(t *testing.T) {
	buf := captureOut(t)
	cfg := testConfig(t, "http://localhost:0")

	code := Dispatch(context.Background(), cfg, []string{"token", "my.jwt.value"})
	require.Equal(t, 0, code, buf.String())

	token, err := loadToken(cfg)
	require.NoError(t, err)
	assert.Equal(t, "my.jwt.value", token)
}

func TestBooksCommand_ListsBooks(t *testing.T) {
	buf := captureOut(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/books/me", r.URL.Path)
		require.Equal(t, "Bearer my.jwt", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]bookView{
			{ID: "b1", Title: "Solaris", Author: "Lem", Available: true},
			{ID: "b2", Title: "Dune", Author: "Herbert", Available: false},
		})
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	require.Equal(t, 0, Dispatch(context.Background(), cfg, []string{"token", "my.jwt"}))

	code := Dispatch(context.Background(), cfg, []string{"books"})
	require.Equal(t, 0, code, buf.String())
	assert.Contains(t, buf.String(), "Solaris")
	assert.Contains(t, buf.String(), "on loan")
}

func TestBorrowCommand_ServerError(t *testing.T) {
	buf := captureOut(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(errorBody{Error: "Conflict", Message: "state changed concurrently"})
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	require.Equal(t, 0, Dispatch(context.Background(), cfg, []string{"token", "my.jwt"}))

	code := Dispatch(context.Background(), cfg, []string{"borrow", "b1"})
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "Conflict")
}

func TestCommandsWithoutToken(t *testing.T) {
	buf := captureOut(t)
	cfg := testConfig(t, "http://localhost:0")

	code := Dispatch(context.Background(), cfg, []string{"requests"})
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "no auth token")
}
