package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hubboard/config"
	"hubboard/internal/health"
	"hubboard/internal/hubui"
	"hubboard/internal/logs"
	"hubboard/internal/middleware"

	"github.com/gorilla/mux"
)

type App struct {
	cfg        *config.Config
	Router     *mux.Router
	httpServer *http.Server

	sessions *hubui.Sessions
	ctx      context.Context
	cancel   context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) error {
	a.cfg = cfg

	// 1) Логи
	logs.Init(logs.Options{
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
		File:   a.cfg.Logging.File,
	})

	loc, err := a.cfg.Location()
	if err != nil {
		return fmt.Errorf("ui timezone: %w", err)
	}
	renderer, err := hubui.NewRenderer(loc)
	if err != nil {
		return fmt.Errorf("ui templates: %w", err)
	}

	// 2) Сессии (только память процесса)
	a.sessions = hubui.NewSessions(hubui.SessionOptions{
		TTL: a.cfg.Session.TTL,
		Max: a.cfg.Session.Max,
	})

	// 3) Роутер + middleware
	a.Router = mux.NewRouter()
	a.Router.Use(middleware.RequestID)
	a.Router.Use(middleware.Recoverer)
	a.Router.Use(middleware.LoggerMW)

	health.RegisterRoutesWithSessions(a.Router, a.sessions)

	// 4) Доска хабов; статика и редиректы регистрируются после неё
	hubui.NewHTTP(a.sessions, renderer, a.cfg.Session.Cookie).RegisterRoutes(a.Router)
	a.RegisterWebUI("/ui/")

	_ = a.Router.Walk(func(rt *mux.Route, r *mux.Router, ancestors []*mux.Route) error {
		path, _ := rt.GetPathTemplate()
		methods, _ := rt.GetMethods()
		logs.Logger.Debugf("route: %-6v %s", methods, path)
		return nil
	})
	return nil
}

func (a *App) Run() error {
	if a.Router == nil || a.cfg == nil {
		return ErrNotInitialized
	}
	bind := net.JoinHostPort(a.cfg.Server.Address, a.cfg.Server.HTTPPort)

	a.ctx, a.cancel = context.WithCancel(context.Background())
	defer a.cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case <-sigs:
			a.cancel()
		case <-a.ctx.Done():
		}
	}()

	go a.sessions.Run(a.ctx, a.cfg.Session.SweepInterval)

	a.httpServer = &http.Server{
		Addr:         bind,
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logs.Logger.Infof("HTTP listening on %s", bind)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-a.ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logs.Logger.Info("shutting down")
	return a.httpServer.Shutdown(ctx)
}

var ErrNotInitialized = &initError{"server not initialized (call Initialize(cfg) first)"}

type initError struct{ s string }

func (e *initError) Error() string { return e.s }
