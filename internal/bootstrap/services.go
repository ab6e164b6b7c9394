package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/SkinTrade_Go/internal/auth"
	"github.com/osse101/SkinTrade_Go/internal/config"
	"github.com/osse101/SkinTrade_Go/internal/economy"
	"github.com/osse101/SkinTrade_Go/internal/eventlog"
	"github.com/osse101/SkinTrade_Go/internal/opening"
	"github.com/osse101/SkinTrade_Go/internal/profile"
	"github.com/osse101/SkinTrade_Go/internal/roulette"
	"github.com/osse101/SkinTrade_Go/internal/server"
	"github.com/osse101/SkinTrade_Go/internal/session"
	"github.com/osse101/SkinTrade_Go/internal/worker"
)

// Application holds every long-lived component built from config.
type Application struct {
	Server    *server.Server
	Sessions  *session.Store
	Opening   *opening.Service
	Activity  eventlog.Service
	Pool      *worker.Pool
	Scheduler *worker.Scheduler
	Shutdown  ShutdownComponents
}

// NewApplication wires the services, event handlers, background jobs and HTTP server.
// Nothing is started; call Start on the returned application.
func NewApplication(cfg *config.Config, content Content) (*Application, error) {
	bus, hub := InitializeEventSystem()

	activity := eventlog.NewService(eventlog.NewMemoryRepository(cfg.ActivityPerSession, nil))

	sessions := session.NewStore(session.Options{
		Capacity:        cfg.SessionCapacity,
		TTL:             cfg.SessionTTL,
		StartingBalance: cfg.StartingBalance,
		OnEvict: func(id string) {
			activity.Forget(context.Background(), id)
		},
	})

	if err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:        bus,
		Hub:             hub,
		EventLogService: activity,
	}); err != nil {
		hub.Stop()
		return nil, err
	}

	tokens, err := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		hub.Stop()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateTokenManager, err)
	}

	economySvc := economy.NewService(sessions, bus)
	openingSvc := opening.NewService(content.Cases, sessions, bus, opening.Options{
		Spinner: roulette.NewSpinner(cfg.RevealDelay),
	})

	srv := server.NewServer(server.Options{
		Addr:              cfg.Addr(),
		MaxBodyBytes:      cfg.MaxRequestBodyBytes,
		TrustedProxies:    cfg.TrustedProxies,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
		SteamReturnURL:    cfg.SteamReturnURL,
	}, server.Services{
		Catalog:  content.Catalog,
		Cases:    content.Cases,
		Sessions: sessions,
		Tokens:   tokens,
		Economy:  economySvc,
		TopUp:    economy.NewTopUp(cfg.YooMoneyReceiver),
		Opening:  openingSvc,
		Profile:  profile.NewService(sessions),
		Activity: activity,
		Hub:      hub,
	})

	pool := worker.NewPool(worker.DefaultWorkerCount, worker.DefaultQueueSize)
	scheduler := worker.NewScheduler(pool)
	jobs := []struct {
		spec string
		job  worker.Job
	}{
		{cfg.MetricsRefreshSchedule, worker.NewSessionGaugeJob(sessions, openingSvc.Spinner())},
		{cfg.ActivityCleanupSchedule, eventlog.NewCleanupJob(activity, cfg.ActivityRetention)},
	}
	for _, j := range jobs {
		if err := scheduler.Schedule(j.spec, j.job); err != nil {
			hub.Stop()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedScheduleJob, err)
		}
	}

	return &Application{
		Server:    srv,
		Sessions:  sessions,
		Opening:   openingSvc,
		Activity:  activity,
		Pool:      pool,
		Scheduler: scheduler,
		Shutdown: ShutdownComponents{
			Server:    srv,
			Scheduler: scheduler,
			Pool:      pool,
			Spinner:   openingSvc.Spinner(),
			Hub:       hub,
		},
	}, nil
}

// Start starts the background workers. The HTTP server is started separately
// because Server.Start blocks.
func (a *Application) Start() {
	a.Pool.Start()
	a.Scheduler.Start()
}
