package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/voting-org/auth"
	"github.com/danielhkuo/voting-org/cliparse"
	"github.com/danielhkuo/voting-org/db"
	"github.com/danielhkuo/voting-org/election"
	"github.com/danielhkuo/voting-org/middleware"
	"github.com/danielhkuo/voting-org/router"
)

func main() {
	var err error

	// Text logs on a terminal, JSON everywhere else
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, nil)
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.KeyFor != "" {
		fmt.Println(auth.GenerateCallerKey(cfg.KeyFor, cfg.CallerKeySalt))
		return
	}

	// Open the election store
	store, err := db.OpenStore(context.Background(), cfg)
	if err != nil {
		slog.Error("store setup failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Store ready", "type", cfg.DatabaseType)

	e := election.New(store, election.Options{
		Rules: election.Rules{
			StrictReject:      cfg.StrictReject,
			RecordVotedVoters: cfg.RecordVotedVoters,
			SingleInit:        cfg.SingleInit,
		},
		Clock:  election.SystemClock{},
		Logger: logger.With("component", "election"),
	})

	// Create router
	mux := router.NewRouter(e, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
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
	slog.Info("Listening", "port", cfg.Port, "rules", e.Rules())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
