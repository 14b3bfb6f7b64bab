// @title			timecalc API
// @version		1.0
// @description	Duration calculator and todo list with elapsed-time tracking.
// @BasePath		/api/v1

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mtlprog/timecalc/internal/clock"
	"github.com/mtlprog/timecalc/internal/config"
	"github.com/mtlprog/timecalc/internal/database"
	"github.com/mtlprog/timecalc/internal/handler"
	"github.com/mtlprog/timecalc/internal/logger"
	"github.com/mtlprog/timecalc/internal/repository"
	"github.com/mtlprog/timecalc/internal/service"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "timecalc",
		Usage: "Duration calculator and todo time tracker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   config.DefaultLogFormat,
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL database URL; todos and calculators are kept in memory when empty",
				EnvVars: []string{"DATABASE_URL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")), c.String("log-format"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
				},
				Action: runServe,
			},
			{
				Name:      "sum",
				Usage:     "Add up durations such as \"1d 2h\" \"45m\"",
				ArgsUsage: "<duration>...",
				Action:    runSum,
			},
			{
				Name:   "migrate",
				Usage:  "Apply database migrations",
				Action: runMigrate,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	clk := clock.Real{}
	var (
		todoRepo       service.TodoRepository
		calculatorRepo service.CalculatorRepository
	)

	if databaseURL := c.String("database-url"); databaseURL != "" {
		db, err := openDatabase(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		todoRepo = repository.NewTodoRepository(db.Pool())
		calculatorRepo = repository.NewCalculatorRepository(db.Pool())
	} else {
		slog.Warn("no database configured, using in-memory storage")
		todoRepo = repository.NewMemoryTodoRepository()
		calculatorRepo = repository.NewMemoryCalculatorRepository(clk.Now)
	}

	h := handler.New(
		service.NewTodoService(todoRepo, clk),
		service.NewCalculatorService(calculatorRepo),
	)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           h.Routes(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runSum(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	total, err := service.SumDurations(c.Args().Slice())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, total)
	return err
}

func runMigrate(c *cli.Context) error {
	databaseURL := c.String("database-url")
	if databaseURL == "" {
		return errors.New("database-url is required for migrate")
	}

	db, err := openDatabase(c.Context, databaseURL)
	if err != nil {
		return err
	}
	db.Close()

	return nil
}

// openDatabase connects and brings the schema up to date.
func openDatabase(ctx context.Context, databaseURL string) (*database.DB, error) {
	db, err := database.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := database.RunMigrations(ctx, db.Pool()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
