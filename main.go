package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/clipsmart/clipsmart-web/internal/authclient"
	"github.com/clipsmart/clipsmart-web/internal/authform"
	"github.com/clipsmart/clipsmart-web/internal/config"
	"github.com/clipsmart/clipsmart-web/internal/handlers"
	"github.com/clipsmart/clipsmart-web/internal/landing"
	"github.com/clipsmart/clipsmart-web/internal/middlewares"
	"github.com/clipsmart/clipsmart-web/internal/notify"
	"github.com/clipsmart/clipsmart-web/internal/render"
	"github.com/clipsmart/clipsmart-web/internal/store"
	"github.com/clipsmart/clipsmart-web/internal/users"
	"github.com/clipsmart/clipsmart-web/model"
	"github.com/clipsmart/clipsmart-web/params"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/memory/v2"
	fredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var (
	app       *cli.App
	gitCommit string
	gitDate   string
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "YAML config file",
		Value: "config.yaml",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging",
	}
)

func init() {
	app = cli.NewApp()
	app.EnableBashCompletion = true
	app.Usage = "ClipSmart landing site"
	app.Flags = []cli.Flag{
		configFileFlag,
		debugFlag,
	}
	app.Commands = []*cli.Command{
		{
			Name: "version",
			Action: func(ctx *cli.Context) error {
				fmt.Println(params.VersionWithCommit(gitCommit, gitDate))
				return nil
			},
		},
	}
	app.Action = run
}

func initLogger(debug bool) {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
}

// initStorage picks redis when configured, otherwise in-process memory.
func initStorage(redisURL string) (fiber.Storage, redis.UniversalClient) {
	if redisURL != "" {
		storage := fredis.New(fredis.Config{URL: redisURL})
		return storage, storage.Conn()
	}
	return memory.New(memory.Config{GCInterval: 10 * time.Second}), nil
}

func mustInitSessionStore(config *config.Config, storage fiber.Storage) *session.Store {
	return session.New(session.Config{
		Storage:        store.NewKVStorage(storage, params.SessionStoreKeyPrefix),
		Expiration:     config.Session.SessionMaxAge,
		KeyLookup:      "cookie:" + config.Session.CookieName,
		CookieHTTPOnly: config.Session.CookieHttpOnly,
		CookieSecure:   config.Session.CookieSecure,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

func run(cliCtx *cli.Context) error {
	config, err := config.LoadConfig(cliCtx.String(configFileFlag.Name))
	if err != nil {
		slog.Error("Could not load config file.", "error", err)
		return err
	}
	initLogger(config.Debug || cliCtx.IsSet(debugFlag.Name))

	storage, rdb := initStorage(config.RedisURL)
	defer storage.Close()

	var userCache store.Store[model.UserSummary]
	if rdb != nil {
		userCache = store.NewRedisStore[model.UserSummary](rdb, params.UserCacheKeyPrefix)
	} else {
		userCache = store.NewMemoryStore[model.UserSummary](storage, params.UserCacheKeyPrefix)
	}

	apiClient := authclient.NewClient(config.APIBaseURL(), authclient.NewHTTPClient(config.Backend.Timeout))
	authForms := authform.NewRegistry(apiClient, params.AuthFormIdleTimeout)
	notifications := notify.NewQueue(store.NewKVStorage(storage, params.NotifyStoreKeyPrefix))
	userService := users.NewUserService(apiClient, userCache, params.UserCacheExpiration)
	rotator := landing.NewStatRotator(time.Now(), params.StatRotateInterval, len(landing.HeroStats))
	sessionStore := mustInitSessionStore(config, storage)

	render.InitValues(fiber.Map{
		"siteName": config.AppName,
		"baseURL":  strings.TrimRight(config.BaseURL, "/"),
		"version":  params.Version(),
	})
	router := fiber.New(fiber.Config{
		AppName:               config.AppName,
		Views:                 render.NewHtmlEngine(config.TemplateDir),
		ErrorHandler:          middlewares.ErrorHandler,
		BodyLimit:             params.ServerBodyLimit,
		IdleTimeout:           params.ServerIdleTimeout,
		ReadTimeout:           params.ServerReadTimeout,
		WriteTimeout:          params.ServerWriteTimeout,
		DisableStartupMessage: true,
	})
	if len(config.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(config.AllowOrigins, ","),
		}))
	}
	base := handlers.NewBasePageHandler(authForms, userService, notifications, rotator)
	handlers.SetupRoutes(router, sessionStore, config.StaticDir, base)

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Starting ClipSmart web server", "address", config.ListenAddr, "backend", config.APIBaseURL())
		return router.Listen(config.ListenAddr)
	})
	g.Go(func() error {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				authForms.Sweep()
				slog.Debug("Swept idle auth forms", "open", authForms.Len())
			}
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), params.ShutdownTimeout)
		defer cancel()
		return router.ShutdownWithContext(shutdownCtx)
	})
	return g.Wait()
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
