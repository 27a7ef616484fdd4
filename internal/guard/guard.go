// Package guard decides what a client may show for a given path and session.
package guard

import (
	"strings"

	"go-certtrack/internal/domain"
)

type DecisionKind int

const (
	// Loading means the session is still being resolved; render nothing yet.
	Loading DecisionKind = iota
	Authorized
	Redirect
	NotFound
)

func (k DecisionKind) String() string {
	switch k {
	case Loading:
		return "loading"
	case Authorized:
		return "authorized"
	case Redirect:
		return "redirect"
	case NotFound:
		return "not-found"
	}
	return "unknown"
}

const (
	LoginPath        = "/login"
	SignupPath       = "/signup"
	HomePath         = "/certificates"
	UnauthorizedPath = "/unauthorized"
)

type Decision struct {
	Kind   DecisionKind
	Target string
}

func authorized() Decision            { return Decision{Kind: Authorized} }
func redirect(target string) Decision { return Decision{Kind: Redirect, Target: target} }

// Identity is the read side of a client session.
type Identity interface {
	IsLoading() bool
	IsAuthenticated() bool
	IsAdmin() bool
	HasPermission(p domain.Permission) bool
}

// Requirement is what a protected route demands. A zero Requirement only
// needs a signed-in user.
type Requirement struct {
	Admin      bool
	Permission domain.Permission
}

// Evaluate gates a protected route.
func Evaluate(id Identity, req Requirement) Decision {
	if id.IsLoading() {
		return Decision{Kind: Loading}
	}
	if !id.IsAuthenticated() {
		return redirect(LoginPath)
	}
	if req.Admin && !id.IsAdmin() {
		return redirect(UnauthorizedPath)
	}
	if req.Permission != "" && !id.HasPermission(req.Permission) {
		return redirect(UnauthorizedPath)
	}
	return authorized()
}

// anonymousOnly gates login and signup: signed-in users go home.
func anonymousOnly(id Identity) Decision {
	if id.IsLoading() {
		return Decision{Kind: Loading}
	}
	if id.IsAuthenticated() {
		return redirect(HomePath)
	}
	return authorized()
}

type route struct {
	anonymous bool
	public    bool
	alias     string
	req       Requirement
}

var routes = map[string]route{
	LoginPath:        {anonymous: true},
	SignupPath:       {anonymous: true},
	UnauthorizedPath: {public: true},
	"/":              {alias: HomePath},
	"/certificates":  {req: Requirement{Permission: domain.PermManageCertificates}},
	"/users":         {req: Requirement{Permission: domain.PermManageUsers}},
	"/employees":     {req: Requirement{Permission: domain.PermManageUsers}},
	"/roles":         {req: Requirement{Permission: domain.PermManageRoles}},
	"/settings":      {req: Requirement{Permission: domain.PermManageRoles}},
	"/analytics":     {req: Requirement{Admin: true, Permission: domain.PermViewReports}},
}

// Paths lists every known route, for help output.
func Paths() []string {
	return []string{"/", LoginPath, SignupPath, HomePath, "/users", "/employees", "/roles", "/settings", "/analytics", UnauthorizedPath}
}

// Resolve maps a path to a decision for the given session.
func Resolve(id Identity, path string) Decision {
	path = normalize(path)
	r, ok := routes[path]
	if !ok {
		return Decision{Kind: NotFound}
	}
	switch {
	case r.alias != "":
		return redirect(r.alias)
	case r.public:
		return authorized()
	case r.anonymous:
		return anonymousOnly(id)
	}
	return Evaluate(id, r.req)
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return strings.ToLower(path)
}
