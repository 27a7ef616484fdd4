package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiCalls struct {
	mu     sync.Mutex
	writes []string
}

func (c *apiCalls) add(r *http.Request) {
	c.mu.Lock()
	c.writes = append(c.writes, r.Method+" "+r.URL.Path)
	c.mu.Unlock()
}

func (c *apiCalls) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}

func fakeAPI(t *testing.T) *httptest.Server {
	srv, _ := fakeAPIWithCalls(t)
	return srv
}

func fakeAPIWithCalls(t *testing.T) (*httptest.Server, *apiCalls) {
	calls := &apiCalls{}
	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, status int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
	authed := func(r *http.Request) bool { return r.Header.Get("Authorization") == "Bearer tok" }

	mux.HandleFunc("/api/Auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret1" {
			write(w, http.StatusUnauthorized, map[string]any{"ok": false, "error": map[string]string{"code": "UNAUTHORIZED", "message": "Invalid email or password"}})
			return
		}
		write(w, http.StatusOK, map[string]any{"ok": true, "data": map[string]string{"token": "tok"}})
	})
	mux.HandleFunc("/api/Auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			write(w, http.StatusUnauthorized, map[string]any{"ok": false})
			return
		}
		write(w, http.StatusOK, map[string]any{"ok": true, "data": map[string]any{
			"id": "u1", "email": "e@acme.io", "name": "Eve", "role": "Employee",
			"permissions": []string{"manage-certificates"},
			"company":     map[string]string{"id": "c1", "companyName": "Acme"},
		}})
	})
	mux.HandleFunc("/api/Certification/my", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			write(w, http.StatusUnauthorized, map[string]any{"ok": false})
			return
		}
		write(w, http.StatusOK, map[string]any{"ok": true, "data": []map[string]any{
			{"id": "cert-1", "courseName": "Go", "organization": "Gophers", "status": "completed"},
		}})
	})

	mux.HandleFunc("/api/Certification/create", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) || r.Method != http.MethodPost {
			write(w, http.StatusUnauthorized, map[string]any{"ok": false})
			return
		}
		calls.add(r)
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["userId"] != nil && req["userId"] != "u1" {
			write(w, http.StatusForbidden, map[string]any{"ok": false, "error": map[string]string{"code": "FORBIDDEN", "message": "You do not have access to this certificate"}})
			return
		}
		write(w, http.StatusCreated, map[string]any{"ok": true, "data": map[string]any{"id": "cert-2", "courseName": req["courseName"]}})
	})
	mux.HandleFunc("/api/Certification/", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) || r.Method != http.MethodDelete {
			write(w, http.StatusUnauthorized, map[string]any{"ok": false})
			return
		}
		calls.add(r)
		if r.URL.Path != "/api/Certification/cert-1" {
			write(w, http.StatusForbidden, map[string]any{"ok": false, "error": map[string]string{"code": "FORBIDDEN", "message": "You do not have access to this certificate"}})
			return
		}
		write(w, http.StatusOK, map[string]any{"ok": true})
	})
	mux.HandleFunc("/api/Role/all", func(w http.ResponseWriter, r *http.Request) {
		if !authed(r) {
			write(w, http.StatusUnauthorized, map[string]any{"ok": false})
			return
		}
		write(w, http.StatusOK, map[string]any{"ok": true, "data": []map[string]any{
			{"id": "r-1", "name": "Admin", "permissions": []string{"manage-certificates", "manage-users", "manage-roles", "view-reports"}},
			{"id": "r-2", "name": "Employee", "permissions": []string{"manage-certificates"}, "isDefault": true},
		}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, calls
}

func invoke(t *testing.T, srv *httptest.Server, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, srv.Client())
	return code, stdout.String(), stderr.String()
}

func TestCertctl_Flow(t *testing.T) {
	srv := fakeAPI(t)
	t.Setenv("CERTTRACK_API_URL", srv.URL+"/api")
	t.Setenv("CERTTRACK_TOKEN_FILE", filepath.Join(t.TempDir(), "token"))

	code, _, stderr := invoke(t, srv, "login", "--email", "e@acme.io", "--password", "wrong")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Invalid email or password")

	code, out, _ := invoke(t, srv, "route", "/certificates")
	assert.Equal(t, 0, code)
	assert.Equal(t, "redirect -> /login\n", out)

	code, out, _ = invoke(t, srv, "login", "--email", "e@acme.io", "--password", "secret1")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Signed in as e@acme.io")

	code, out, _ = invoke(t, srv, "whoami")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "false")

	code, out, _ = invoke(t, srv, "certs", "--mine")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "cert-1")

	code, out, _ = invoke(t, srv, "route", "/users")
	assert.Equal(t, 0, code)
	assert.Equal(t, "redirect -> /unauthorized\n", out)

	code, _, _ = invoke(t, srv, "logout")
	assert.Equal(t, 0, code)

	code, _, stderr = invoke(t, srv, "whoami")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "not")
}

func TestCertctl_Usage(t *testing.T) {
	srv := fakeAPI(t)

	code, _, stderr := invoke(t, srv)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: certctl")

	code, _, stderr = invoke(t, srv, "fly")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "fly"`)
}

func TestCertctl_CertificateWrites(t *testing.T) {
	srv, calls := fakeAPIWithCalls(t)
	t.Setenv("CERTTRACK_API_URL", srv.URL+"/api")
	t.Setenv("CERTTRACK_TOKEN_FILE", filepath.Join(t.TempDir(), "token"))

	code, _, _ := invoke(t, srv, "login", "--email", "e@acme.io", "--password", "secret1")
	require.Equal(t, 0, code)

	code, _, stderr := invoke(t, srv, "certs", "add", "--course", "  ", "--org", "CNCF")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--course and --org are required")
	assert.Empty(t, calls.list())

	code, _, stderr = invoke(t, srv, "certs", "add", "--course", "CKA", "--org", "CNCF", "--user", "u9")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "only admins")
	assert.Empty(t, calls.list())

	code, out, _ := invoke(t, srv, "certs", "add", "--course", "CKA", "--org", "CNCF", "--status", "started")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Created certificate cert-2.\n", out)

	code, out, _ = invoke(t, srv, "certs", "rm", "cert-1")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Deleted certificate cert-1.\n", out)

	code, _, stderr = invoke(t, srv, "certs", "rm", "cert-other")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "You do not have access to this certificate")

	assert.Equal(t, []string{
		"POST /api/Certification/create",
		"DELETE /api/Certification/cert-1",
		"DELETE /api/Certification/cert-other",
	}, calls.list())

	code, out, _ = invoke(t, srv, "roles")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Employee")
	assert.Contains(t, out, "true")
}
