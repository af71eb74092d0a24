package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/storerating/internal/client/access"
	"github.com/dmitrijs2005/storerating/internal/client/client"
	"github.com/dmitrijs2005/storerating/internal/client/config"
	"github.com/dmitrijs2005/storerating/internal/client/dataview"
	"github.com/dmitrijs2005/storerating/internal/client/rating"
	"github.com/dmitrijs2005/storerating/internal/client/screens"
	"github.com/dmitrijs2005/storerating/internal/client/services"
	"github.com/dmitrijs2005/storerating/internal/client/session"
	"github.com/dmitrijs2005/storerating/internal/cryptox"
	"github.com/dmitrijs2005/storerating/internal/logging"
)

// apiClient is the transport as the console uses it: the API plus the
// unauthorized hook.
type apiClient interface {
	client.Client
	OnUnauthorized(fn func(ctx context.Context))
}

type App struct {
	config   *config.Config
	log      logging.Logger
	sessions *session.Store
	api      apiClient
	nav      *access.Navigator

	authService  services.AuthService
	adminService services.AdminService
	ownerService services.OwnerService

	// screens maps a location to the list shown there.
	screens map[string]*screens.ListScreen
	rating  *rating.Workflow

	mu       sync.Mutex
	location string
	owner    services.OwnerDashboard

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the session store, the HTTP client and the services. A
// session persisted by an earlier run is restored unless its token expired.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	slots, err := newSlots(ctx, c, log)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(slots, log)
	if err := sessions.Load(ctx); err != nil {
		log.Warn(ctx, "error restoring session", "error", err)
	}

	api := client.NewHTTPClient(client.Config{
		BaseURL:   c.APIBaseURL,
		Timeout:   c.RequestTimeout,
		RateLimit: c.RateLimit,
		Burst:     c.RateBurst,
	}, sessions, log)

	return newApp(c, log, sessions, api, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newSlots(ctx context.Context, c *config.Config, log logging.Logger) (session.SlotRepository, error) {
	if c.SessionDir == "" {
		return session.NewMemorySlots(), nil
	}
	slots, err := session.NewFileSlots(c.SessionDir, []byte(c.SessionPassphrase))
	if errors.Is(err, cryptox.ErrEmptyPassphrase) {
		log.Warn(ctx, "no session passphrase set, keeping the session in memory")
		return session.NewMemorySlots(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening session dir: %w", err)
	}
	return slots, nil
}

func newApp(c *config.Config, log logging.Logger, sessions *session.Store, api apiClient, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		config:       c,
		log:          log,
		sessions:     sessions,
		api:          api,
		nav:          access.NewNavigator(sessions, log),
		authService:  services.NewAuthService(api, sessions, log),
		adminService: services.NewAdminService(api, log),
		ownerService: services.NewOwnerService(api, log),
		reader:       reader,
		out:          out,
	}

	userStores := screens.NewUserStores(api.UserStores, log)
	a.screens = map[string]*screens.ListScreen{
		access.AdminStoresPath:    screens.NewAdminStores(api.AdminStores, log),
		access.AdminUsersPath:     screens.NewAdminUsers(api.AdminUsers, log),
		access.UserDashboardPath:  userStores,
		access.OwnerDashboardPath: screens.NewOwnerRaters(a.ownerRaters, log),
	}
	a.rating = rating.NewWorkflow(api, userStores.Fetch, log)

	api.OnUnauthorized(a.sessionExpired)
	return a
}

// Run enters the landing location and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sessions.Get()
	return ok
}

func (a *App) currentLocation() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location
}

func (a *App) setLocation(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.location = path
}

// leave abandons whatever the current location was doing: in-flight
// fetches are dropped and an open rating is discarded.
func (a *App) leave() {
	if s, ok := a.screens[a.currentLocation()]; ok {
		s.Leave()
	}
	if a.rating.State() == rating.Editing {
		_ = a.rating.Cancel()
	}
}

// sessionExpired runs when the API answers 401. The transport has already
// cleared the session. On the login form a 401 means bad credentials, and
// Login reports it.
func (a *App) sessionExpired(ctx context.Context) {
	from := a.currentLocation()
	a.log.Info(ctx, "session rejected by the server", "location", from)
	a.leave()
	a.setLocation(access.LoginPath)
	if from != access.LoginPath {
		printlnFn("Session expired. Please log in again.")
	}
}

// ownerRaters fetches the owner dashboard once and keeps the summary for
// rendering; the raters become the screen's records.
func (a *App) ownerRaters(ctx context.Context) ([]dataview.Record, error) {
	d, err := a.ownerService.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.owner = d
	a.mu.Unlock()
	return d.Raters, nil
}
