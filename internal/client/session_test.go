package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go-certtrack/internal/client"
	"go-certtrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validToken = "good-token"

type fakeBackend struct {
	mu          sync.Mutex
	meCalls     int
	permissions []string
}

func (b *fakeBackend) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (b *fakeBackend) fail(w http.ResponseWriter, status int, code, message string) {
	b.writeJSON(w, status, map[string]any{
		"ok":    false,
		"error": map[string]string{"code": code, "message": message},
	})
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/Auth/signin":
		var req struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "admin@acme.io" || req.Password != "secret1" {
			b.fail(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
			return
		}
		b.writeJSON(w, http.StatusOK, map[string]any{"ok": true, "data": map[string]string{"token": validToken}})

	case "/api/Auth/me":
		b.mu.Lock()
		b.meCalls++
		perms := b.permissions
		b.mu.Unlock()
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			b.fail(w, http.StatusUnauthorized, "UNAUTHORIZED", "Token expired")
			return
		}
		b.writeJSON(w, http.StatusOK, map[string]any{"ok": true, "data": map[string]any{
			"id":          "u1",
			"email":       "admin@acme.io",
			"role":        "Admin",
			"permissions": perms,
			"company":     map[string]string{"id": "c1", "companyName": "Acme"},
		}})

	case "/api/Certification/all":
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))

	default:
		http.NotFound(w, r)
	}
}

func newStore(t *testing.T, token string, perms ...string) (*client.SessionStore, *client.MemoryTokenStore, *fakeBackend) {
	if len(perms) == 0 {
		perms = []string{"manage-certificates", "manage-users"}
	}
	backend := &fakeBackend{permissions: perms}
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	tokens := client.NewMemoryTokenStore(token)
	gw := client.NewRESTGateway(srv.URL+"/api", srv.Client())
	return client.NewSessionStore(gw, tokens), tokens, backend
}

func TestSessionStore_StartsLoading(t *testing.T) {
	store, _, _ := newStore(t, "")

	state := store.Snapshot()
	assert.True(t, state.Loading)
	assert.False(t, store.IsAdmin())
	assert.False(t, store.HasPermission(domain.PermManageCertificates))
}

func TestSessionStore_InvalidLoginStaysAnonymous(t *testing.T) {
	store, tokens, _ := newStore(t, "")
	require.NoError(t, store.Initialize(context.Background()))

	err := store.Login(context.Background(), "admin@acme.io", "wrong")

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, client.StatusOf(err))
	assert.Contains(t, err.Error(), "Invalid email or password")

	state := store.Snapshot()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Profile)
	saved, _ := tokens.Load()
	assert.Empty(t, saved)
	assert.Empty(t, store.Token())
}

func TestSessionStore_LoginPersistsAndNotifies(t *testing.T) {
	store, tokens, _ := newStore(t, "")
	require.NoError(t, store.Initialize(context.Background()))

	var seen []client.State
	unsubscribe := store.Subscribe(func(s client.State) { seen = append(seen, s) })

	require.NoError(t, store.Login(context.Background(), "admin@acme.io", "secret1"))

	saved, _ := tokens.Load()
	assert.Equal(t, validToken, saved)
	assert.True(t, store.IsAdmin())
	assert.True(t, store.HasPermission(domain.PermManageCertificates))
	assert.False(t, store.HasPermission(domain.PermViewReports))
	require.Len(t, seen, 1)
	assert.Equal(t, "admin@acme.io", seen[0].Profile.Email)

	unsubscribe()
	require.NoError(t, store.Logout())
	require.NoError(t, store.Logout())
	assert.Len(t, seen, 1)
	assert.False(t, store.Snapshot().IsAuthenticated())
	saved, _ = tokens.Load()
	assert.Empty(t, saved)
}

func TestSessionStore_UnknownPermissionRejectsLogin(t *testing.T) {
	store, tokens, _ := newStore(t, "", "manage-certificates", "launch-rockets")
	require.NoError(t, store.Initialize(context.Background()))

	err := store.Login(context.Background(), "admin@acme.io", "secret1")

	assert.Error(t, err)
	saved, _ := tokens.Load()
	assert.Empty(t, saved)
}

func TestSessionStore_InitializeRestores(t *testing.T) {
	store, _, backend := newStore(t, validToken)

	require.NoError(t, store.Initialize(context.Background()))

	assert.True(t, store.Snapshot().IsAuthenticated())
	assert.Equal(t, "Acme", store.Snapshot().Profile.Company.CompanyName)
	assert.Equal(t, 1, backend.meCalls)
}

func TestSessionStore_InitializeClearsStaleToken(t *testing.T) {
	store, tokens, _ := newStore(t, "expired-token")

	err := store.Initialize(context.Background())

	assert.Error(t, err)
	state := store.Snapshot()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Profile)
	saved, _ := tokens.Load()
	assert.Empty(t, saved)
}

func TestRESTGateway_FallbackMessage(t *testing.T) {
	srv := httptest.NewServer(&fakeBackend{})
	t.Cleanup(srv.Close)
	gw := client.NewRESTGateway(srv.URL+"/api/", srv.Client())

	_, err := gw.ListCertificates(context.Background(), validToken)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Failed to fetch certificates", apiErr.Message)
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "certtrack", "token")
	store := client.NewFileTokenStore(path)

	token, err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("abc"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err = store.Load()
	assert.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	token, _ = store.Load()
	assert.Empty(t, token)
}
