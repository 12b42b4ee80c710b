// cmd/visa-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"visa-platform/internal/ads/library"
	"visa-platform/internal/ads/templates"
	"visa-platform/internal/common/aws"
	"visa-platform/internal/common/config"
	"visa-platform/internal/common/database"
	commonhttp "visa-platform/internal/common/http"
	"visa-platform/internal/common/logger"
	"visa-platform/internal/common/observability"
	"visa-platform/internal/server"
	"visa-platform/internal/visa/application"
	"visa-platform/internal/visa/countries"
	"visa-platform/internal/visa/lookup"
	"visa-platform/internal/visa/photos"
	"visa-platform/internal/visa/pricing"
	"visa-platform/internal/visa/session"
	"visa-platform/internal/visa/wizard"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting visa server...",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New("visa-server")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		// Test the connection with context
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		// Test the connection with context
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init domain services ---
	engine := pricing.NewEngine(pricing.DefaultSpeeds(), log)
	records := application.NewStore(pg.DB, engine, log)
	resolver := countries.NewResolver(countries.DefaultTables(), log)
	selector := templates.NewSelector(log)
	libStore := library.NewStore(pg.DB, log)
	photoStore := photos.NewStore(pg.DB, log)

	paymentsClient := commonhttp.NewClient(config.GetDuration(cfg.Payments.Timeout))
	payments := lookup.NewHTTPPaymentFetcher(cfg.Payments.BaseURL, paymentsClient, log)
	orders := lookup.NewAdapter(payments, records, redis.Client, log)

	// Submissions are stored locally unless a records backend is configured.
	var creator application.Creator = records
	if cfg.Application.BackendURL != "" {
		submitClient := commonhttp.NewClient(config.GetDuration(cfg.Application.SubmitTimeout))
		creator = application.NewHTTPCreator(cfg.Application.BackendURL, submitClient, log)
		zapLog.Info("Forwarding submissions to records backend", zap.String("backendUrl", cfg.Application.BackendURL))
	}

	// The wizard walks one browser session through the application flow and
	// hands off to the same creator the direct POST route uses.
	sessionStore := session.NewStore(redis.Client, config.GetDuration(cfg.Application.SessionTTL), log)
	uploader := photos.NewUploader(photoStore, config.GetDuration(cfg.Uploads.Timeout), log)
	wizards := wizard.NewManager(creator, uploader, sessionStore, config.GetDuration(cfg.Application.SessionTTL), log)

	// --- Init confirmation email (optional) ---
	var mailer *application.Mailer
	if cfg.Integrations.AWS.SES.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client failed", zap.Error(err))
		}
		mailer = application.NewMailer(sesClient, cfg.Integrations.AWS.SES.FromEmail, log)
		zapLog.Info("SES mailer initialized", zap.String("region", cfg.Integrations.AWS.Region))
	} else {
		zapLog.Info("SES mailer disabled, confirmation emails will be skipped")
	}

	// --- Init urgent order alerts (optional) ---
	var alerter *application.Alerter
	if cfg.Integrations.AWS.SNS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client failed", zap.Error(err))
		}
		alerter = application.NewAlerter(snsClient, cfg.Integrations.AWS.SNS.TopicARN, log)
		zapLog.Info("SNS alerter initialized", zap.String("topicArn", cfg.Integrations.AWS.SNS.TopicARN))
	}

	handler := server.NewHandler(creator, mailer, orders, resolver, engine, selector, libStore, photoStore, log).
		WithObservability(obs).
		WithAlerter(alerter).
		WithWizards(wizards)
	router := server.SetupRouter(handler)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", cfg.Server.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining connections...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Visa server stopped gracefully")
}
