package main

import (
	"context"
	"database/sql"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/eventgate/backend"
	"github.com/danielhkuo/eventgate/cliparse"
	"github.com/danielhkuo/eventgate/db"
	"github.com/danielhkuo/eventgate/middleware"
	"github.com/danielhkuo/eventgate/roster"
	"github.com/danielhkuo/eventgate/router"
	"github.com/danielhkuo/eventgate/scan"
	"github.com/danielhkuo/eventgate/sse"
)

func main() {
	// A .env file is optional; real deployments set the environment
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Select the roster store
	store, err := openRosterStore(cfg)
	if err != nil {
		slog.Error("roster store setup failed", "error", err)
		os.Exit(1)
	}
	participants := roster.New(store, roster.KeyParticipants)
	winners := roster.New(store, roster.KeyWinners)

	// Select the backend client once; handlers never branch on it
	var client backend.Client
	if cfg.BackendURL != "" {
		client = backend.NewRemoteClient(cfg.BackendURL)
		slog.Info("Forwarding to backend", "url", cfg.BackendURL)
	} else {
		// Stub draws come from the live roster, minus anyone who already won
		client = backend.NewStubClient(func(ctx context.Context) []string {
			names, err := participants.List(ctx)
			if err != nil {
				slog.Error("failed to read participants", "error", err)
				return nil
			}
			won, err := winners.List(ctx)
			if err != nil {
				slog.Error("failed to read winners", "error", err)
				return names
			}
			wonSet := make(map[string]bool, len(won))
			for _, name := range won {
				wonSet[name] = true
			}
			pool := names[:0:0]
			for _, name := range names {
				if !wonSet[name] {
					pool = append(pool, name)
				}
			}
			return pool
		})
		slog.Warn("No backend configured; serving stub sample data")
	}

	flows := scan.NewRegistry(func() *scan.Flow {
		return scan.NewFlow(client, participants)
	})
	broadcaster := sse.NewBroadcaster()

	// Parse templates
	templates, err := template.ParseGlob("templates/*.html")
	if err != nil {
		slog.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	// Create router
	handler := router.NewRouter(router.Deps{
		Client:       client,
		Participants: participants,
		Winners:      winners,
		Flows:        flows,
		Broadcaster:  broadcaster,
		Templates:    templates,
		StaticDir:    "static",
	})

	// Create server
	server := http.Server{
		Handler: middleware.CORS(handler),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openRosterStore builds the configured roster store and verifies it is
// reachable before the server starts taking scans.
func openRosterStore(cfg cliparse.Config) (roster.Store, error) {
	switch cfg.RosterStore {
	case cliparse.StoreSQL:
		driver := "sqlite"
		if cfg.DatabaseType == "postgres" {
			driver = "postgres"
		}
		conn, err := sql.Open(driver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := conn.Ping(); err != nil {
			return nil, err
		}
		if err := db.CreateSchema(conn); err != nil {
			return nil, err
		}
		slog.Info("Database schema ready", "driver", driver)
		return roster.NewSQLStore(conn), nil

	case cliparse.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, err
		}
		slog.Info("Redis roster store ready", "addr", cfg.RedisAddr)
		return roster.NewRedisStore(client), nil

	default:
		return roster.NewMemoryStore(), nil
	}
}
