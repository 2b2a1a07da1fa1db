package main

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/notesvault/app/api/docs"
	"github.com/ribgsilva/notesvault/app/api/handlers"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/ribgsilva/notesvault/persistence/v1/storage"
	"github.com/ribgsilva/notesvault/platform/logger"
	"github.com/ribgsilva/notesvault/platform/web/auth"
	"github.com/ribgsilva/notesvault/sys"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// @title Note API
// @version 1.0
// @description Service to store and handle short text notes.
// @contact.name Gabriel Ribeiro Silva
// @securityDefinitions.basic BasicAuth
func main() {
	log, err := logger.New("Notes-API")
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
	cfg.LoadAuth(log)
	cfg.LoadDatabase(log)
	cfg.LoadCache(log)
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

	svc := note.NewService(st.Notes)

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
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/v1/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	var mw []gin.HandlerFunc
	if cfg.Auth.Enabled {
		mw = append(mw, auth.Basic(cfg.Auth.User, cfg.Auth.Pass))
	} else {
		log.Warnw("startup", "status", "basic auth disabled")
	}

	handlers.MapDefaults(router)
	handlers.MapApi(router, log, svc, mw...)

	docs.SwaggerInfo.Host = cfg.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", cfg.Swagger.Protocol, cfg.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Http.Port),
		Handler:      router,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		IdleTimeout:  cfg.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "started http server", "port", cfg.Http.Port)
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
