package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"

	"go-certtrack/internal/client"
	"go-certtrack/internal/guard"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const usage = `usage: certctl [flags] <command>

commands:
  login --email E --password P   sign in and store the token
  logout                         forget the stored token
  whoami                         show the signed-in user
  certs [--mine]                 list certificates
  certs add --course C --org O   log a certificate (--status, --level, --category,
                                 --start, --end; admins may pass --user)
  certs rm <id>                  delete a certificate
  roles                          list the company's roles
  route <path>                   show where the app would send you for path
`

type settings struct {
	APIURL    string
	TokenFile string
	Password  string
}

func loadSettings(flags *pflag.FlagSet) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix("certtrack")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("api-url", "http://localhost:3000/api")
	if err := v.BindPFlags(flags); err != nil {
		return settings{}, err
	}

	s := settings{
		APIURL:    v.GetString("api-url"),
		TokenFile: v.GetString("token-file"),
		Password:  v.GetString("password"),
	}
	if s.TokenFile == "" {
		path, err := client.DefaultTokenPath()
		if err != nil {
			return settings{}, err
		}
		s.TokenFile = path
	}
	return s, nil
}

// run executes one command and returns the process exit code. A nil
// httpClient uses the gateway default.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, httpClient *http.Client) int {
	flags := pflag.NewFlagSet("certctl", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { fmt.Fprint(stderr, usage) }
	flags.String("api-url", "", "API base URL (env CERTTRACK_API_URL)")
	flags.String("token-file", "", "where the session token is stored (env CERTTRACK_TOKEN_FILE)")
	email := flags.String("email", "", "login email")
	flags.String("password", "", "login password (env CERTTRACK_PASSWORD)")
	mine := flags.Bool("mine", false, "only certificates you own")
	var input client.CertificateInput
	flags.StringVar(&input.CourseName, "course", "", "course name")
	flags.StringVar(&input.Organization, "org", "", "issuing organization")
	flags.StringVar(&input.Status, "status", "", "started, in-progress or completed")
	flags.StringVar(&input.Level, "level", "", "course level")
	flags.StringVar(&input.Category, "category", "", "course category")
	flags.StringVar(&input.StartDate, "start", "", "start date (YYYY-MM-DD)")
	flags.StringVar(&input.EndDate, "end", "", "end date (YYYY-MM-DD)")
	flags.StringVar(&input.UserID, "user", "", "owner user id (admins only)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	cfg, err := loadSettings(flags)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	gw := client.NewRESTGateway(cfg.APIURL, httpClient)
	tokens := client.NewFileTokenStore(cfg.TokenFile)
	store := client.NewSessionStore(gw, tokens)

	cmd, rest := flags.Arg(0), flags.Args()[1:]
	switch cmd {
	case "login":
		err = login(ctx, store, *email, cfg.Password, stdout)
	case "logout":
		err = store.Logout()
		if err == nil {
			fmt.Fprintln(stdout, "Logged out.")
		}
	case "whoami":
		err = whoami(ctx, store, stdout)
	case "certs":
		switch {
		case len(rest) == 0:
			err = listCertificates(ctx, store, gw, *mine, stdout)
		case rest[0] == "add":
			err = addCertificate(ctx, store, gw, input, stdout)
		case rest[0] == "rm" && len(rest) == 2:
			err = removeCertificate(ctx, store, gw, rest[1], stdout)
		default:
			err = fmt.Errorf("unknown certs command %q", strings.Join(rest, " "))
		}
	case "roles":
		err = listRoles(ctx, store, gw, stdout)
	case "route":
		if len(rest) != 1 {
			err = errors.New("route needs exactly one path")
			break
		}
		err = route(ctx, store, rest[0], stdout)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		flags.Usage()
		return 2
	}

	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func login(ctx context.Context, store *client.SessionStore, email, password string, out io.Writer) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.New("--email and --password are required")
	}
	if err := store.Login(ctx, email, password); err != nil {
		return err
	}
	p := store.Snapshot().Profile
	fmt.Fprintf(out, "Signed in as %s (%s) at %s.\n", p.Email, p.Role, p.Company.CompanyName)
	return nil
}

// restore loads the stored session; a rejected token means signed out.
func restore(ctx context.Context, store *client.SessionStore) (client.State, error) {
	if err := store.Initialize(ctx); err != nil && client.StatusOf(err) == 0 {
		return client.State{}, err
	}
	state := store.Snapshot()
	if !state.IsAuthenticated() {
		return state, client.ErrNotAuthenticated
	}
	return state, nil
}

func whoami(ctx context.Context, store *client.SessionStore, out io.Writer) error {
	state, err := restore(ctx, store)
	if err != nil {
		return err
	}
	p := state.Profile

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name\t%s\n", p.Name)
	fmt.Fprintf(w, "Email\t%s\n", p.Email)
	fmt.Fprintf(w, "Company\t%s\n", p.Company.CompanyName)
	fmt.Fprintf(w, "Role\t%s\n", p.Role)
	fmt.Fprintf(w, "Admin\t%t\n", state.IsAdmin())
	fmt.Fprintf(w, "Permissions\t%s\n", strings.Join(p.Permissions, ", "))
	return w.Flush()
}

func listCertificates(ctx context.Context, store *client.SessionStore, gw client.Gateway, mine bool, out io.Writer) error {
	state, err := restore(ctx, store)
	if err != nil {
		return err
	}

	var certs []client.Certificate
	if mine {
		certs, err = gw.ListMyCertificates(ctx, store.Token())
	} else {
		certs, err = gw.ListCertificates(ctx, store.Token())
	}
	if err != nil {
		return err
	}

	if len(certs) == 0 {
		fmt.Fprintln(out, "No certificates.")
		return nil
	}
	withOwner := !mine && state.IsAdmin()
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := "ID\tCOURSE\tORGANIZATION\tSTATUS\tSTART\tEND"
	if withOwner {
		header += "\tOWNER"
	}
	fmt.Fprintln(w, header)
	for _, c := range certs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s",
			c.ID, c.CourseName, c.Organization, dash(c.Status), dash(c.StartDate), dash(c.EndDate))
		if withOwner {
			fmt.Fprintf(w, "\t%s", dash(c.OwnerName))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// addCertificate checks the required fields before any request is sent.
func addCertificate(ctx context.Context, store *client.SessionStore, gw client.Gateway, input client.CertificateInput, out io.Writer) error {
	input.CourseName = strings.TrimSpace(input.CourseName)
	input.Organization = strings.TrimSpace(input.Organization)
	if input.CourseName == "" || input.Organization == "" {
		return errors.New("--course and --org are required")
	}

	state, err := restore(ctx, store)
	if err != nil {
		return err
	}
	if input.UserID != "" && input.UserID != state.Profile.ID && !state.IsAdmin() {
		return errors.New("only admins can log certificates for other users")
	}

	cert, err := gw.CreateCertificate(ctx, store.Token(), input)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Created certificate %s.\n", cert.ID)
	return nil
}

func removeCertificate(ctx context.Context, store *client.SessionStore, gw client.Gateway, id string, out io.Writer) error {
	if _, err := restore(ctx, store); err != nil {
		return err
	}
	if err := gw.DeleteCertificate(ctx, store.Token(), id); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted certificate %s.\n", id)
	return nil
}

func listRoles(ctx context.Context, store *client.SessionStore, gw client.Gateway, out io.Writer) error {
	if _, err := restore(ctx, store); err != nil {
		return err
	}
	roles, err := gw.ListRoles(ctx, store.Token())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDEFAULT\tPERMISSIONS")
	for _, r := range roles {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", r.ID, r.Name, r.IsDefault, dash(strings.Join(r.Permissions, ", ")))
	}
	return w.Flush()
}

func route(ctx context.Context, store *client.SessionStore, path string, out io.Writer) error {
	if err := store.Initialize(ctx); err != nil && client.StatusOf(err) == 0 {
		return err
	}
	d := guard.Resolve(store.Snapshot(), path)
	if d.Kind == guard.Redirect {
		fmt.Fprintf(out, "%s -> %s\n", d.Kind, d.Target)
		return nil
	}
	fmt.Fprintln(out, d.Kind)
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
