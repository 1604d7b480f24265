package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/repify/repify/common"
	"github.com/repify/repify/config"
	"github.com/repify/repify/contact"
	"github.com/repify/repify/logger"
	"github.com/repify/repify/page"
	"github.com/repify/repify/server"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page and the script API",
	Long: `Start the HTTP server with the landing page, the AI script writer API,
the contact form, health and metrics endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		if cmd.Flags().Changed("address") {
			cfg.Server.Address, _ = cmd.Flags().GetString("address")
		}
		if err := applyLLMFlags(cmd, cfg); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	content, err := page.WithYamlFile(cfg.Page.ContentFile)
	if err != nil {
		logger.Warnf("Falling back to default page content: %v", err)
	}
	if cfg.Page.CalendarURL != "" {
		content.CalendarURL = cfg.Page.CalendarURL
	}

	retryConfig := common.DefaultRetryConfig()
	retryConfig.Timeout = cfg.Contact.Timeout
	forwarder := contact.NewForwarder(cfg.Contact.WebhookURL, retryConfig)
	if !forwarder.Enabled() {
		logger.Info("No contact webhook configured, leads are not forwarded")
	}

	var limiter *server.RateLimiter
	if cfg.RateLimit.RPS > 0 {
		limiter = server.NewRateLimiter(ctx, rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst, cfg.RateLimit.ExpiresIn)
	}

	ipExtractor, err := server.NewIPExtractor(cfg.Server.TrustedProxies)
	if err != nil {
		return err
	}

	e := server.New(server.Deps{
		Generator:       generator,
		Forwarder:       forwarder,
		Copy:            content,
		RateLimiter:     limiter,
		IPExtractor:     ipExtractor,
		ForwardDeadline: cfg.Contact.Deadline,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	errCh := make(chan error, 1)
	go func() {
		logger.Sugar().Infow("starting server", "address", cfg.Server.Address)
		if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server exited properly")
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", ":8080", "Address to listen on")
	addLLMFlags(serveCmd)
}
