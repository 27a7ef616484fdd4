package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Gateway is the backend as seen by the client. Authenticated calls take the
// bearer token explicitly.
type Gateway interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, token string) (Profile, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	SignupCompany(ctx context.Context, input SignupInput) error

	ListCertificates(ctx context.Context, token string) ([]Certificate, error)
	ListMyCertificates(ctx context.Context, token string) ([]Certificate, error)
	CreateCertificate(ctx context.Context, token string, input CertificateInput) (Certificate, error)
	UpdateCertificate(ctx context.Context, token, id string, input CertificateInput) (Certificate, error)
	DeleteCertificate(ctx context.Context, token, id string) error

	ListEmployees(ctx context.Context, token string) ([]Employee, error)
	CreateEmployee(ctx context.Context, token string, input EmployeeInput) (Employee, error)
	UpdateEmployee(ctx context.Context, token, id string, input EmployeeInput) (Employee, error)
	UpdateEmployeeRole(ctx context.Context, token, id, roleID string) error
	DeleteEmployee(ctx context.Context, token, id string) error
	ListRoles(ctx context.Context, token string) ([]Role, error)
}

// RESTGateway talks to the /api surface of the server.
type RESTGateway struct {
	baseURL string
	http    *http.Client
}

func NewRESTGateway(baseURL string, httpClient *http.Client) *RESTGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &RESTGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do sends one request and decodes the envelope's data into out. fallback is
// the message used when the server does not supply one.
func (g *RESTGateway) do(ctx context.Context, method, path, token string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Client-Type", "cli")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return &APIError{Message: fallback + ": " + err.Error()}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: fallback}
		if decodeErr == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			if env.Error.Message != "" {
				apiErr.Message = env.Error.Message
			}
		}
		return apiErr
	}
	if decodeErr != nil {
		return &APIError{Status: resp.StatusCode, Message: fallback}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Status: resp.StatusCode, Message: fallback}
		}
	}
	return nil
}

func (g *RESTGateway) SignIn(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := g.do(ctx, http.MethodPost, "/Auth/signin", "", body, &out, "Failed to sign in"); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &APIError{Status: http.StatusOK, Message: "Failed to sign in"}
	}
	return out.Token, nil
}

func (g *RESTGateway) Me(ctx context.Context, token string) (Profile, error) {
	var out Profile
	err := g.do(ctx, http.MethodGet, "/Auth/me", token, nil, &out, "Failed to fetch user data")
	return out, err
}

func (g *RESTGateway) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"newPassword": newPassword}
	return g.do(ctx, http.MethodPost, "/Auth/reset-password", token, body, nil, "Failed to reset password")
}

func (g *RESTGateway) SignupCompany(ctx context.Context, input SignupInput) error {
	return g.do(ctx, http.MethodPost, "/Company/signup", "", input, nil, "Failed to sign up company")
}

func (g *RESTGateway) ListCertificates(ctx context.Context, token string) ([]Certificate, error) {
	var out []Certificate
	err := g.do(ctx, http.MethodGet, "/Certification/all", token, nil, &out, "Failed to fetch certificates")
	return out, err
}

func (g *RESTGateway) ListMyCertificates(ctx context.Context, token string) ([]Certificate, error) {
	var out []Certificate
	err := g.do(ctx, http.MethodGet, "/Certification/my", token, nil, &out, "Failed to fetch certificates")
	return out, err
}

func (g *RESTGateway) CreateCertificate(ctx context.Context, token string, input CertificateInput) (Certificate, error) {
	var out Certificate
	err := g.do(ctx, http.MethodPost, "/Certification/create", token, input, &out, "Failed to create certificate")
	return out, err
}

func (g *RESTGateway) UpdateCertificate(ctx context.Context, token, id string, input CertificateInput) (Certificate, error) {
	var out Certificate
	err := g.do(ctx, http.MethodPut, "/Certification/"+id, token, input, &out, "Failed to update certificate")
	return out, err
}

func (g *RESTGateway) DeleteCertificate(ctx context.Context, token, id string) error {
	return g.do(ctx, http.MethodDelete, "/Certification/"+id, token, nil, nil, "Failed to delete certificate")
}

func (g *RESTGateway) ListEmployees(ctx context.Context, token string) ([]Employee, error) {
	var out []Employee
	err := g.do(ctx, http.MethodGet, "/Employee/all", token, nil, &out, "Failed to fetch users")
	return out, err
}

func (g *RESTGateway) CreateEmployee(ctx context.Context, token string, input EmployeeInput) (Employee, error) {
	var out Employee
	err := g.do(ctx, http.MethodPost, "/Employee/create", token, input, &out, "Failed to create employee")
	return out, err
}

func (g *RESTGateway) UpdateEmployee(ctx context.Context, token, id string, input EmployeeInput) (Employee, error) {
	var out Employee
	err := g.do(ctx, http.MethodPut, "/Employee/"+id, token, input, &out, "Failed to update employee")
	return out, err
}

func (g *RESTGateway) UpdateEmployeeRole(ctx context.Context, token, id, roleID string) error {
	body := map[string]string{"roleId": roleID}
	return g.do(ctx, http.MethodPut, "/Employee/"+id+"/role", token, body, nil, "Failed to update user role")
}

func (g *RESTGateway) DeleteEmployee(ctx context.Context, token, id string) error {
	return g.do(ctx, http.MethodDelete, "/Employee/"+id, token, nil, nil, "Failed to delete user")
}

func (g *RESTGateway) ListRoles(ctx context.Context, token string) ([]Role, error) {
	var out []Role
	err := g.do(ctx, http.MethodGet, "/Role/all", token, nil, &out, "Failed to fetch roles")
	return out, err
}
