package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/emsdesk/internal/client/client"
	"github.com/dmitrijs2005/emsdesk/internal/client/config"
	"github.com/dmitrijs2005/emsdesk/internal/client/models"
	"github.com/dmitrijs2005/emsdesk/internal/client/navigation"
	"github.com/dmitrijs2005/emsdesk/internal/client/notifications"
	"github.com/dmitrijs2005/emsdesk/internal/client/preview"
	"github.com/dmitrijs2005/emsdesk/internal/client/services"
	"github.com/dmitrijs2005/emsdesk/internal/client/session"
	"github.com/dmitrijs2005/emsdesk/internal/logging"
)

type App struct {
	config  *config.Config
	client  *client.Client
	svc     *services.Set
	guard   *navigation.Guard
	poller  *notifications.Poller
	preview *preview.Previewer
	log     logging.Logger

	in  *bufio.Reader
	out io.Writer

	mu       sync.Mutex
	route    navigation.Route
	lastDocs []models.Document

	commands map[string]*command
	order    []*command
}

// NewApp builds the application over an already migrated database.
func NewApp(c *config.Config, db *sql.DB, log logging.Logger, in io.Reader, out io.Writer) *App {
	store := session.NewStore(db, log)
	return newApp(c, client.New(c, store, log), log, in, out)
}

func newApp(c *config.Config, api *client.Client, log logging.Logger, in io.Reader, out io.Writer) *App {
	svc := services.NewSet(api)
	a := &App{
		config:  c,
		client:  api,
		svc:     svc,
		guard:   navigation.NewGuard(api.Session()),
		poller:  notifications.NewPoller(svc.Notifications, c.NotificationInterval, log),
		preview: preview.New(c.PreviewDir),
		log:     log,
		in:      bufio.NewReader(in),
		out:     out,
	}
	a.registerCommands()
	return a
}

// Run restores the saved session, starts the notification poller and
// blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := a.client.Session()
	if err := store.Init(ctx); err != nil {
		if !errors.Is(err, session.ErrCorruptSession) {
			return fmt.Errorf("restore session: %w", err)
		}
		a.println(client.UserMessage(err))
	}

	states, unsubscribe := store.Subscribe()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.poller.Follow(ctx, store.State(), states)
	}()

	a.println("Welcome to EMS desk (type 'help' for commands)")
	if sess, ok := store.Current(); ok {
		a.printf("Signed in as %s\n", sess.User.Username)
		a.land(ctx, sess.User.Roles)
	}

	runREPL(ctx, a, a.in, a.out)

	cancel()
	unsubscribe()
	wg.Wait()
	return a.Close()
}

// Close releases the live preview file.
func (a *App) Close() error {
	return a.preview.Close()
}

func (a *App) isLoggedIn() bool {
	return a.client.Session().IsLoggedIn()
}

// Prompt shows who is signed in, the current screen and the unread badge.
func (a *App) Prompt() string {
	sess, ok := a.client.Session().Current()
	if !ok {
		return "ems> "
	}

	var b strings.Builder
	b.WriteString("ems (")
	b.WriteString(sess.User.Username)
	if r := a.currentRoute(); r != "" {
		b.WriteString(" @ ")
		b.WriteString(string(r))
	}
	b.WriteString(")")
	if n := a.poller.Count(); n > 0 {
		fmt.Fprintf(&b, " [%d unread]", n)
	}
	b.WriteString("> ")
	return b.String()
}

func (a *App) currentRoute() navigation.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.isLoggedIn() {
		return ""
	}
	return a.route
}

func (a *App) setRoute(r navigation.Route) {
	a.mu.Lock()
	a.route = r
	a.mu.Unlock()
}

func (a *App) setLastDocs(docs []models.Document) {
	a.mu.Lock()
	a.lastDocs = docs
	a.mu.Unlock()
}

func (a *App) getLastDocs() []models.Document {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastDocs
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.in, prompt, a.out)
}

// askOptional is ask with "(optional)" appended to the prompt.
func (a *App) askOptional(prompt string) (string, error) {
	return getSimpleText(a.in, prompt+" (optional)", a.out)
}
