package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/Faizanmoriani2/bignote/internal/api/health"
	"github.com/Faizanmoriani2/bignote/internal/api/notes"
	"github.com/Faizanmoriani2/bignote/internal/config"
	"github.com/Faizanmoriani2/bignote/internal/ctxtr"
	"github.com/Faizanmoriani2/bignote/internal/repository"
	notesuc "github.com/Faizanmoriani2/bignote/internal/usecase/notes"
	"github.com/Faizanmoriani2/bignote/internal/usecase/upload"
	"github.com/Faizanmoriani2/bignote/pkg/database"
	"github.com/Faizanmoriani2/bignote/pkg/grpcx"
	"github.com/Faizanmoriani2/bignote/pkg/gwserver"
	"github.com/Faizanmoriani2/bignote/pkg/logger/slogx"
)

func main() {
	flag.Usage = func() { config.Usage(flag.CommandLine.Output()) }
	flag.Parse()

	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty, ctxtr.LogHandler); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	pool, err := database.NewPGX(ctx, database.NewOptions(
		net.JoinHostPort(cfg.Database.Host, cfg.Database.Port),
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		database.WithRetryAttempts(cfg.Database.RetryAttempts),
		database.WithMaxConns(cfg.Database.MaxConns),
		database.WithTraceQueries(cfg.Database.TraceQueries),
		database.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("connect to database: %v", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate database: %v", err)
	}

	db := database.NewDatabase(pool)

	notesUsecase, err := notesuc.New(notesuc.NewOptions(repository.New(db), db))
	if err != nil {
		return fmt.Errorf("init notes usecase: %v", err)
	}

	uploadUsecase, err := upload.New(upload.NewOptions(
		upload.WithParallelism(cfg.Upload.Parallelism),
	))
	if err != nil {
		return fmt.Errorf("init upload usecase: %v", err)
	}

	notesAPI, err := notes.New(notes.NewOptions(
		notesUsecase,
		uploadUsecase,
		notes.WithMaxUploadBytes(cfg.Upload.MaxBytes),
		notes.WithMaxUploadFiles(cfg.Upload.MaxFiles),
	))
	if err != nil {
		return fmt.Errorf("init notes api: %v", err)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodPut,
		},
		AllowedHeaders: []string{"Content-Type", ctxtr.RequestIDHeader},
		ExposedHeaders: []string{ctxtr.RequestIDHeader},
	})

	httpSrv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		notesAPI.Handler(),
		gwserver.WithMiddlewares(
			slogx.RecoverMiddleware,
			slogx.HTTPMiddleware,
			ctxtr.Middleware,
			corsHandler.Handler,
		),
		gwserver.WithLogger(slogx.Default()),
		gwserver.WithReadTimeout(cfg.HTTP.ReadTimeout),
		gwserver.WithWriteTimeout(cfg.HTTP.WriteTimeout),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	grpcSrv, err := grpcx.New(grpcx.NewOptions(
		cfg.GRPC.Addr,
		grpcx.WithServices(health.New(db)),
		grpcx.WithLogger(slogx.Default()),
		grpcx.WithMaxConnIdle(cfg.GRPC.MaxConnIdle),
		grpcx.WithCallLogger(slogx.InterceptorLogger()),
	))
	if err != nil {
		return fmt.Errorf("init grpc server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return httpSrv.Run(ctx) })
	eg.Go(func() error { return grpcSrv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
