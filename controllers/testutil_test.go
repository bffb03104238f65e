package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Santo1607/AIVoteSystem/ledger"
	"github.com/Santo1607/AIVoteSystem/routes"
	"github.com/Santo1607/AIVoteSystem/store"
)

var testJWTSecret = []byte("controller-test-secret")

// env is a full request stack over the in-memory adapters, seeded with the
// demo data set and with ledger voting open.
type env struct {
	router *gin.Engine
	store  *store.MemStore
	ledger *ledger.Simulated
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	memStore := store.NewMemStore()
	ctx := context.Background()
	if err := store.Seed(ctx, memStore, logger); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	var key [32]byte
	copy(key[:], "0123456789abcdef0123456789abcdef")
	auditLedger := ledger.NewSimulated(key, 0, logger)
	candidates, err := memStore.ListCandidates(ctx)
	if err != nil {
		t.Fatalf("list candidates: %v", err)
	}
	for _, candidate := range candidates {
		if err := auditLedger.RegisterCandidate(candidate.ID, candidate.Name, candidate.PartyName, candidate.PartyLogo); err != nil {
			t.Fatalf("register candidate on ledger: %v", err)
		}
	}
	if err := auditLedger.StartVoting(); err != nil {
		t.Fatalf("open ledger voting: %v", err)
	}

	router := routes.SetupRouter(routes.Deps{
		Store:     memStore,
		Ledger:    auditLedger,
		JWTSecret: testJWTSecret,
		Logger:    logger,
	})
	return &env{router: router, store: memStore, ledger: auditLedger}
}

// do sends a JSON request through the router and returns the recorder.
func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

// loginVoter logs a voter in and returns the issued token. Seeded voters
// use their DOB as the password.
func (e *env) loginVoter(t *testing.T, voterID, password string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/voter/login", "", gin.H{
		"voterId": voterID, "password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("voter login failed (%d): %s", w.Code, w.Body.String())
	}
	token, _ := e.decode(t, w)["token"].(string)
	if token == "" {
		t.Fatal("voter login returned no token")
	}
	return token
}

func (e *env) loginAdmin(t *testing.T) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/admin/login", "", gin.H{
		"username": "admin", "password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login failed (%d): %s", w.Code, w.Body.String())
	}
	token, _ := e.decode(t, w)["token"].(string)
	if token == "" {
		t.Fatal("admin login returned no token")
	}
	return token
}
