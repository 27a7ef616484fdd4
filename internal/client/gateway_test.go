package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go-certtrack/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

// recorder answers every request with data, or with a bare status when
// failWith is set, and remembers what it saw.
type recorder struct {
	mu       sync.Mutex
	seen     []recordedRequest
	data     any
	failWith int
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	rec := recordedRequest{Method: req.Method, Path: req.URL.Path, Auth: req.Header.Get("Authorization")}
	if req.Body != nil {
		_ = json.NewDecoder(req.Body).Decode(&rec.Body)
	}
	r.mu.Lock()
	r.seen = append(r.seen, rec)
	r.mu.Unlock()

	if r.failWith != 0 {
		w.WriteHeader(r.failWith)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "data": r.data})
}

func (r *recorder) last(t *testing.T) recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.seen)
	return r.seen[len(r.seen)-1]
}

func newRecorder(t *testing.T, data any, failWith int) (*client.RESTGateway, *recorder) {
	rec := &recorder{data: data, failWith: failWith}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)
	return client.NewRESTGateway(srv.URL+"/api", srv.Client()), rec
}

func TestRESTGateway_WriteOperations(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		call     func(gw *client.RESTGateway) error
		method   string
		path     string
		authed   bool
		body     map[string]any
		fallback string
	}{
		{
			name: "create certificate",
			call: func(gw *client.RESTGateway) error {
				_, err := gw.CreateCertificate(ctx, validToken, client.CertificateInput{CourseName: "Go", Organization: "Gophers", UserID: "u2"})
				return err
			},
			method: http.MethodPost, path: "/api/Certification/create", authed: true,
			body:     map[string]any{"courseName": "Go", "organization": "Gophers", "userId": "u2"},
			fallback: "Failed to create certificate",
		},
		{
			name: "update certificate",
			call: func(gw *client.RESTGateway) error {
				_, err := gw.UpdateCertificate(ctx, validToken, "c-1", client.CertificateInput{Status: "completed"})
				return err
			},
			method: http.MethodPut, path: "/api/Certification/c-1", authed: true,
			body:     map[string]any{"status": "completed"},
			fallback: "Failed to update certificate",
		},
		{
			name: "delete certificate",
			call: func(gw *client.RESTGateway) error {
				return gw.DeleteCertificate(ctx, validToken, "c-1")
			},
			method: http.MethodDelete, path: "/api/Certification/c-1", authed: true,
			fallback: "Failed to delete certificate",
		},
		{
			name: "create employee",
			call: func(gw *client.RESTGateway) error {
				_, err := gw.CreateEmployee(ctx, validToken, client.EmployeeInput{Email: "e@acme.io", Password: "secret1", FullName: "Eve"})
				return err
			},
			method: http.MethodPost, path: "/api/Employee/create", authed: true,
			body:     map[string]any{"email": "e@acme.io", "password": "secret1", "fullName": "Eve"},
			fallback: "Failed to create employee",
		},
		{
			name: "update employee",
			call: func(gw *client.RESTGateway) error {
				_, err := gw.UpdateEmployee(ctx, validToken, "u2", client.EmployeeInput{Email: "e@acme.io", FullName: "Eve Adams", Department: "Ops"})
				return err
			},
			method: http.MethodPut, path: "/api/Employee/u2", authed: true,
			body:     map[string]any{"email": "e@acme.io", "fullName": "Eve Adams", "department": "Ops"},
			fallback: "Failed to update employee",
		},
		{
			name: "update employee role",
			call: func(gw *client.RESTGateway) error {
				return gw.UpdateEmployeeRole(ctx, validToken, "u2", "r-9")
			},
			method: http.MethodPut, path: "/api/Employee/u2/role", authed: true,
			body:     map[string]any{"roleId": "r-9"},
			fallback: "Failed to update user role",
		},
		{
			name: "delete employee",
			call: func(gw *client.RESTGateway) error {
				return gw.DeleteEmployee(ctx, validToken, "u2")
			},
			method: http.MethodDelete, path: "/api/Employee/u2", authed: true,
			fallback: "Failed to delete user",
		},
		{
			name: "reset password",
			call: func(gw *client.RESTGateway) error {
				return gw.ResetPassword(ctx, validToken, "newsecret")
			},
			method: http.MethodPost, path: "/api/Auth/reset-password", authed: true,
			body:     map[string]any{"newPassword": "newsecret"},
			fallback: "Failed to reset password",
		},
		{
			name: "signup company",
			call: func(gw *client.RESTGateway) error {
				return gw.SignupCompany(ctx, client.SignupInput{CompanyName: "Acme", OwnerName: "Ann", AdminEmail: "ann@acme.io", AdminPassword: "secret1"})
			},
			method: http.MethodPost, path: "/api/Company/signup",
			body: map[string]any{
				"companyName": "Acme", "ownerName": "Ann",
				"adminEmail": "ann@acme.io", "adminPassword": "secret1",
			},
			fallback: "Failed to sign up company",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw, rec := newRecorder(t, map[string]any{}, 0)

			require.NoError(t, tc.call(gw))

			got := rec.last(t)
			assert.Equal(t, tc.method, got.Method)
			assert.Equal(t, tc.path, got.Path)
			if tc.authed {
				assert.Equal(t, "Bearer "+validToken, got.Auth)
			} else {
				assert.Empty(t, got.Auth)
			}
			if tc.body != nil {
				assert.Equal(t, tc.body, got.Body)
			}
		})

		t.Run(tc.name+" fallback message", func(t *testing.T) {
			gw, _ := newRecorder(t, nil, http.StatusInternalServerError)

			err := tc.call(gw)

			var apiErr *client.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
			assert.Equal(t, tc.fallback, apiErr.Message)
		})
	}
}

func TestRESTGateway_ListRoles(t *testing.T) {
	gw, rec := newRecorder(t, []map[string]any{
		{"id": "r-1", "name": "Admin", "permissions": []string{"manage-users"}, "isOwner": true},
		{"id": "r-2", "name": "Employee", "permissions": []string{"manage-certificates"}, "isDefault": true},
	}, 0)

	roles, err := gw.ListRoles(context.Background(), validToken)

	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.True(t, roles[0].IsOwner)
	assert.True(t, roles[1].IsDefault)
	assert.Equal(t, "/api/Role/all", rec.last(t).Path)
	assert.Equal(t, "Bearer "+validToken, rec.last(t).Auth)
}

func TestRESTGateway_CreateCertificateDecodesResult(t *testing.T) {
	gw, _ := newRecorder(t, map[string]any{"id": "c-7", "userId": "u2", "ownerName": "Eve", "courseName": "Go"}, 0)

	cert, err := gw.CreateCertificate(context.Background(), validToken, client.CertificateInput{CourseName: "Go", Organization: "Gophers"})

	require.NoError(t, err)
	assert.Equal(t, "c-7", cert.ID)
	assert.Equal(t, "Eve", cert.OwnerName)
}
