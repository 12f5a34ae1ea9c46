package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/burnchart-backend/internal/burn/cache"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/chain"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/issuance"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/model"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/notify"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/repository/clickhouse"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/service/series"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/service/streamer"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/service/summary"
	"github.com/goodnatureofminers/burnchart-backend/internal/burn/subgraph"
	"github.com/goodnatureofminers/burnchart-backend/internal/metrics"
	"github.com/goodnatureofminers/burnchart-backend/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	sourceSubgraph   = "subgraph"
	sourceClickhouse = "clickhouse"
	issuanceStatic   = "static"
)

type config struct {
	Addr              string        `long:"addr" env:"BURN_API_ADDR" description:"HTTP listen address" default:":8001"`
	Source            string        `long:"source" env:"BURN_API_SOURCE" description:"index backing the ledger and block reads" choice:"subgraph" choice:"clickhouse" default:"subgraph"`
	Issuance          string        `long:"issuance" env:"BURN_API_ISSUANCE" description:"issuance source for the net issuance series" choice:"static" choice:"clickhouse" default:"static"`
	IssuancePerBlock  string        `long:"issuance-per-block" env:"BURN_API_ISSUANCE_PER_BLOCK" description:"ETH issued per block by the static source" default:"2"`
	IssuanceFromBlock uint64        `long:"issuance-from-block" env:"BURN_API_ISSUANCE_FROM_BLOCK" description:"first block the static source reports"`
	BurnSubgraphURL   string        `long:"burn-subgraph-url" env:"BURN_API_BURN_SUBGRAPH_URL" description:"GraphQL endpoint of the burn counter subgraph"`
	BlocksSubgraphURL string        `long:"blocks-subgraph-url" env:"BURN_API_BLOCKS_SUBGRAPH_URL" description:"GraphQL endpoint of the blocks subgraph"`
	SubgraphRPS       int           `long:"subgraph-rps" env:"BURN_API_SUBGRAPH_RPS" description:"subgraph requests per second" default:"20"`
	HTTPTimeout       time.Duration `long:"http-timeout" env:"BURN_API_HTTP_TIMEOUT" description:"timeout of subgraph HTTP requests" default:"10s"`
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"BURN_API_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	RedisAddr         string        `long:"redis-addr" env:"BURN_API_REDIS_ADDR" description:"Redis address, publishing is off when empty"`
	RedisPassword     string        `long:"redis-password" env:"BURN_API_REDIS_PASSWORD" description:"Redis password"`
	RedisDB           int           `long:"redis-db" env:"BURN_API_REDIS_DB" description:"Redis database number"`
	RedisPrefix       string        `long:"redis-prefix" env:"BURN_API_REDIS_PREFIX" description:"Redis channel prefix" default:"burnchart:series"`
	RedisBlockChannel string        `long:"redis-block-channel" env:"BURN_API_REDIS_BLOCK_CHANNEL" description:"Redis channel announcing new blocks, refreshes early on each message"`
	Resolution        string        `long:"resolution" env:"BURN_API_RESOLUTION" description:"initial chart resolution" default:"block"`
	RefreshInterval   time.Duration `long:"refresh-interval" env:"BURN_API_REFRESH_INTERVAL" description:"delay between refreshes" default:"2500ms"`
	Delay             time.Duration `long:"delay" env:"BURN_API_DELAY" description:"lag of the chart window behind now" default:"2s"`
}

type sources struct {
	ledger   chain.LedgerIndex
	blocks   chain.BlockIndex
	issuance chain.IssuanceSource
	close    func()
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("burn api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	registry, err := model.NewRegistry(model.DefaultResolutions()...)
	if err != nil {
		return fmt.Errorf("build resolution registry: %w", err)
	}
	initial := model.Resolution(cfg.Resolution)
	if _, err := registry.Lookup(initial); err != nil {
		return fmt.Errorf("initial resolution: %w", err)
	}

	src, err := newSources(cfg, logger)
	if err != nil {
		return err
	}
	defer src.close()

	pipeline, err := series.NewPipeline(src.ledger, src.blocks, src.issuance, metrics.NewRangeBatcher(), logger.Named("series"))
	if err != nil {
		return fmt.Errorf("init series pipeline: %w", err)
	}
	defer pipeline.Close()

	summaries, err := summary.NewService(src.ledger, src.blocks, logger.Named("summary"))
	if err != nil {
		return fmt.Errorf("init summary service: %w", err)
	}
	defer summaries.Close()

	seriesCache, err := cache.New(registry, metrics.NewCache())
	if err != nil {
		return fmt.Errorf("init series cache: %w", err)
	}

	httpMetrics := metrics.NewHTTPServer()
	hub := transport.NewHub(httpMetrics, logger)
	presenters := streamer.Presenters{hub}

	var blockSignal <-chan struct{}
	if cfg.RedisAddr != "" {
		rdb, err := notify.NewRedisClient(ctx, notify.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, logger)
		if err != nil {
			return err
		}
		defer func() {
			_ = rdb.Close()
		}()

		publisher, err := notify.NewRedisPresenter(rdb, cfg.RedisPrefix, metrics.NewRedisPublisher(), logger)
		if err != nil {
			return fmt.Errorf("init redis presenter: %w", err)
		}
		publisher.Start(ctx)
		defer publisher.Stop()
		presenters = append(presenters, publisher)

		blockSignal, err = notify.StartBlockSignal(ctx, rdb, cfg.RedisBlockChannel, logger.Named("block_signal"))
		if err != nil {
			return err
		}
	}

	adapter, err := streamer.NewAdapter(
		registry,
		pipeline,
		seriesCache,
		presenters,
		metrics.NewStreamer(),
		initial,
		streamer.Options{RefreshInterval: cfg.RefreshInterval, Delay: cfg.Delay},
		logger.Named("streamer"),
	)
	if err != nil {
		return fmt.Errorf("init streamer: %w", err)
	}

	if blockSignal != nil {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-blockSignal:
					adapter.Wake()
				}
			}
		}()
	}

	server, err := transport.NewServer(registry, adapter, summaries, hub, httpMetrics, logger)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to listen and serve", zap.Error(err))
		}
	}()

	logger.Info("starting burn chart refresh",
		zap.String("source", cfg.Source),
		zap.String("resolution", string(initial)),
		zap.Duration("refresh_interval", cfg.RefreshInterval))

	if err := adapter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newSources(cfg config, logger *zap.Logger) (*sources, error) {
	src := &sources{close: func() {}}

	var repo *clickhouse.Repository
	if cfg.Source == sourceClickhouse || cfg.Issuance == sourceClickhouse {
		if cfg.ClickhouseDSN == "" {
			return nil, errors.New("clickhouse dsn is required")
		}
		r, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("init repository: %w", err)
		}
		repo = r
		src.close = func() {
			if err := r.Close(); err != nil {
				logger.Warn("close clickhouse repository", zap.Error(err))
			}
		}
	}

	switch cfg.Source {
	case sourceClickhouse:
		src.ledger, src.blocks = repo, repo
	case sourceSubgraph:
		client, err := subgraph.NewClient(
			&http.Client{Timeout: cfg.HTTPTimeout},
			cfg.BurnSubgraphURL,
			cfg.BlocksSubgraphURL,
			cfg.SubgraphRPS,
			metrics.NewSubgraphClient(),
			logger.Named("subgraph"),
		)
		if err != nil {
			src.close()
			return nil, fmt.Errorf("init subgraph client: %w", err)
		}
		src.ledger, src.blocks = client, client
	default:
		src.close()
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}

	switch cfg.Issuance {
	case sourceClickhouse:
		src.issuance = repo
	case issuanceStatic:
		perBlock, err := decimal.NewFromString(cfg.IssuancePerBlock)
		if err != nil {
			src.close()
			return nil, fmt.Errorf("parse issuance per block: %w", err)
		}
		static, err := issuance.NewStatic(perBlock, cfg.IssuanceFromBlock)
		if err != nil {
			src.close()
			return nil, err
		}
		src.issuance = static
	default:
		src.close()
		return nil, fmt.Errorf("unknown issuance source %q", cfg.Issuance)
	}

	return src, nil
}
