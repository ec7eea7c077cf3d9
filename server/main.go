package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leafspace/qr-studio/internal/config"
	"github.com/leafspace/qr-studio/internal/http/handlers"
	"github.com/leafspace/qr-studio/internal/http/routes"
	"github.com/leafspace/qr-studio/internal/models"
	"github.com/leafspace/qr-studio/internal/services/processor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	root := &cobra.Command{
		Use:          "qrstudio",
		Short:        "Leaf Space QR code generator",
		SilenceUsage: true,
	}

	// --- serve command -------------------------------------------------------
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web form and API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(serveCmd)

	// --- render command ------------------------------------------------------
	var req models.RenderRequest
	var out string
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single QR code to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), &req, out)
		},
	}
	renderCmd.Flags().StringVar(&req.URL, "url", models.DefaultURL, "URL to encode")
	renderCmd.Flags().StringVar(&req.Caption, "caption", models.DefaultCaption, "Text shown next to the logo")
	renderCmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to a timestamped name)")
	root.AddCommand(renderCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// setup loads configuration and builds the shared processor.
func setup() (*config.Config, *zap.Logger, *processor.ImageProcessor, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	fonts := processor.LoadFont(cfg.Assets.FontPath)
	proc := processor.NewImageProcessor(cfg.Assets.LogoPath, fonts, logger)

	return cfg, logger, proc, nil
}

func runServe() error {
	cfg, logger, proc, err := setup()
	if err != nil {
		log.Println(err)
		return err
	}
	defer logger.Sync()

	if err := proc.CheckLogo(); err != nil {
		logger.Warn("Logo asset is not usable, renders will fail until it is fixed", zap.Error(err))
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize handlers
	qrHandler := handlers.NewQRHandler(proc, logger)

	router := routes.NewRouter(qrHandler, cfg.RateLimit, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server exited")
	return nil
}

func runRender(ctx context.Context, req *models.RenderRequest, out string) error {
	_, logger, proc, err := setup()
	if err != nil {
		log.Println(err)
		return err
	}
	defer logger.Sync()

	if ctx == nil {
		ctx = context.Background()
	}

	result, err := proc.Render(ctx, req)
	if err != nil {
		logger.Error("Failed to render QR code", zap.Error(err))
		return err
	}

	if out == "" {
		out = result.Filename
	}
	if err := os.WriteFile(out, result.PNG, 0o644); err != nil {
		logger.Error("Failed to write QR code", zap.String("path", out), zap.Error(err))
		return err
	}

	logger.Info("QR code written",
		zap.String("path", out),
		zap.Int("width", result.Width),
		zap.Int("height", result.Height),
	)
	return nil
}
