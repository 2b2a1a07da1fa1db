package main

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/notesvault/app/api/handlers"
	"github.com/ribgsilva/notesvault/app/messaging/consumers/v1/notes"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/ribgsilva/notesvault/persistence/v1/storage"
	"github.com/ribgsilva/notesvault/platform/logger"
	"github.com/ribgsilva/notesvault/sys"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub/awssnssqs"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

func main() {

	log, err := logger.New("Notes-Messaging")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	var cfg sys.Config
	cfg.LoadHttp(log)
	cfg.LoadDatabase(log)
	cfg.LoadCache(log)
	cfg.LoadMessaging(log)
	cfg.LoadNewRelic(log)

	// =======================================================================================================
	// Setup static resources

	st, err := storage.Open(log, cfg)
	if err != nil {
		return fmt.Errorf("could not open storage: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Errorw("shutdown", "status", "could not close storage", "ERROR", err)
		}
	}()
	log.Infow("startup", "database", cfg.Database.Driver, "cache", cfg.Cache.Enabled)

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.Licence),
		newrelic.ConfigEnabled(cfg.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if cfg.NewRelic.Enabled {
		if err := nrApp.WaitForConnection(cfg.NewRelic.ConnectionTimeout); err != nil {
			return err
		}
	}
	defer nrApp.Shutdown(cfg.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Messaging configuration

	awsCfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return err
	}

	sqsCli := sqs.NewFromConfig(awsCfg)

	subscription := awssnssqs.OpenSubscriptionV2(
		context.Background(),
		sqsCli,
		cfg.Messaging.TopicName,
		&awssnssqs.SubscriptionOptions{
			Raw:      true,
			WaitTime: cfg.Messaging.WaitTime,
		})

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), cfg.Messaging.ShutdownTimeout)
		defer stdCancel()

		if err := subscription.Shutdown(stdCtx); err != nil {
			log.Errorw("shutdown", "status", "could not stop subscription gracefully", "ERROR", err)
		}
	}()

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	handlers.MapDefaults(router)

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Http.Port),
		Handler:      router,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		IdleTimeout:  cfg.Http.IdleTimeout,
	}

	go func() {
		log.Infow("startup", "status", "started healthcheck http server", "port", cfg.Http.Port)
		if err := svr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("healthcheck", "status", "http server stopped", "ERROR", err)
		}
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()
		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	go func() {
		sig := <-shutdown
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		cancelFunc()
	}()

	consumer := notes.Consumer{
		Log:     log,
		Service: note.NewService(st.Notes),
		NR:      nrApp,
	}

	log.Infow("startup", "status", "consuming", "topic", cfg.Messaging.TopicName, "workers", cfg.Messaging.MaxWorkers)
	if err := consumer.Consume(withCancel, subscription, cfg.Messaging.MaxWorkers); err != nil {
		return fmt.Errorf("listener error: %w", err)
	}
	log.Infow("shutdown", "status", "shutdown complete")

	return nil
}
