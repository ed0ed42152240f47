package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"aitech-backend/internal/config"
	"aitech-backend/internal/db"
	"aitech-backend/internal/dispatcher"
	"aitech-backend/internal/handler"
	"aitech-backend/internal/mailer"
	"aitech-backend/internal/metrics"
	"aitech-backend/internal/repository"
	"aitech-backend/internal/router"
	"aitech-backend/internal/service"
)

// Run initializes and starts the application
func Run() error {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	logrus.Info("Starting AI-TECH backend")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	dbConn, err := db.Init(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	m := metrics.NewMetrics()

	var transport mailer.Transport
	if cfg.Mail.UseGmailAPI {
		transport, err = mailer.NewGmailTransport(mailer.GmailCredentials{
			ClientID:     cfg.Mail.ClientID,
			ClientSecret: cfg.Mail.ClientSecret,
			RefreshToken: cfg.Mail.RefreshToken,
			UserEmail:    cfg.Mail.UserEmail,
			SenderName:   cfg.Mail.SenderName,
		})
		if err != nil {
			return fmt.Errorf("failed to create Gmail transport: %w", err)
		}
		logrus.Info("Using Gmail API for outbound mail")
	} else {
		transport = mailer.NewSMTPTransport(&cfg.Mail)
		logrus.Info("Using SMTP for outbound mail")
	}

	repo := repository.New(dbConn)
	replies := service.NewReplyService(dbConn)
	disp := dispatcher.New(&cfg.Dispatcher, repo, transport, m)

	h := handler.NewHandlers(dbConn, repo, replies, disp, m)
	r := router.SetupRouter(h)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	if err := disp.Start(); err != nil {
		return fmt.Errorf("failed to start dispatcher: %w", err)
	}

	go func() {
		logrus.Infof("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := disp.Stop(); err != nil {
		logrus.Errorf("Failed to stop dispatcher: %v", err)
	}
	disp.Wait()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("HTTP server shutdown error: %v", err)
	}

	if err := transport.Close(); err != nil {
		logrus.Errorf("Failed to close mail transport: %v", err)
	}

	logrus.Info("Server stopped gracefully")
	return nil
}
