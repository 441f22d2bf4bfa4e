package main

import (
	"chat-live/auth"
	"chat-live/domain"
	"chat-live/infrastructure/grpc/server"
	"chat-live/infrastructure/rest"
	"chat-live/infrastructure/socket"
	"chat-live/infrastructure/storage"
	"chat-live/internal"
	"chat-live/moderation"
	"chat-live/observability"
	"chat-live/repositories"
	"chat-live/runtime"
	"chat-live/runtime/workers"
	"chat-live/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const mediaPrefix = "/media"

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a server failure.
// Defers release badger and bluge once the servers are stopped.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Storage (BadgerDB, Bluge, media directory)
	db, err := badger.Open(buildBadgerOpts(ctx, config, logger))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	media, err := storage.NewMediaStore(logger, config.MediaDir, mediaPrefix, config.MaxMediaBytes)
	if err != nil {
		return exitRuntime, fmt.Errorf("media store: %w", err)
	}

	censored, err := moderation.LoadCensored()
	if err != nil {
		return exitRuntime, fmt.Errorf("censored words: %w", err)
	}
	moderator, err := moderation.NewModerator(censored.Words, charReplacement, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("moderator: %w", err)
	}
	logger.Info("Moderation ready", "words", len(censored.Words), "languages", censored.Languages)

	// 3. Session layer & supervised workers
	monitor := observability.NewMonitor()
	orchestrator := runtime.NewOrchestrator(logger, workers.NewSupervisor(logger), monitor, config.HeartbeatInterval)

	messageIndex := repositories.NewMessageIndex(blugeWriter, logger)
	indexQueue := make(chan domain.Message, config.IndexBufferSize)
	orchestrator.Add(workers.NewIndexWorker(logger, messageIndex, indexQueue))

	// 4. Services
	issuer := auth.NewIssuer(config.JWTSecret, config.AuthTokenDuration)
	userRepository := repositories.NewUserRepository(db)
	messageRepository := repositories.NewMessageRepository(db, logger, config.LimitMessages)

	authService := services.NewAuthService(logger, userRepository, issuer, media)
	chatService := services.NewChatService(logger,
		messageRepository, userRepository,
		messageIndex, indexQueue,
		moderator, media,
		orchestrator.Router(), config.SearchLimit)

	// 5. Context & Signals
	// The admin port is bound first, nothing runs yet if it is taken.
	adminAddress := fmt.Sprintf("%s:%d", config.Host, config.AdminPort)
	listener, err := net.Listen("tcp", adminAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", adminAddress, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 3)
	orchestratorDone := make(chan struct{})
	go func() {
		defer close(orchestratorDone)
		orchestrator.Start(ctx)
	}()

	// 6. HTTP server (REST + websocket)
	socketServer := socket.NewServer(logger, orchestrator.Sessions(), issuer, socket.Options{
		BufferSize:      config.ConnectionBufferSize,
		RequireAuth:     config.WSRequireAuth,
		AllowedOrigins:  config.Origins(),
		WriteTimeout:    config.WSWriteTimeout,
		PongTimeout:     config.WSPongTimeout,
		MaxMessageBytes: int64(config.WSMaxMessageBytes),
	})
	handler := rest.NewHandler(logger, authService, chatService, issuer, rest.Options{
		MediaDir:      media.Dir(),
		MediaPrefix:   mediaPrefix,
		SecureCookie:  config.SecureCookie,
		MaxBodyBytes:  maxBodyBytes(config.MaxMediaBytes),
		SocketHandler: socketServer,
	})

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:              address,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Admin gRPC server
	admin := server.NewAdminServer(logger, orchestrator)
	go func() {
		if err := admin.Serve(listener); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 9. Graceful shutdown: stop accepting, close live sockets, drain workers
	logger.Info("Shutting down gracefully...")
	stop()
	admin.MarkNotServing()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	orchestrator.Stop()
	<-orchestratorDone
	admin.GracefulStop()
	logger.Info("Program stopped cleanly", "stats", orchestrator.Stats())

	return code, runErr
}

func buildBadgerOpts(ctx context.Context, config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	switch {
	case logger.Enabled(ctx, slog.LevelDebug):
		return options.WithLoggingLevel(badger.DEBUG)
	case logger.Enabled(ctx, slog.LevelInfo):
		return options.WithLoggingLevel(badger.INFO)
	default:
		return options.WithLoggingLevel(badger.WARNING)
	}
}

// maxBodyBytes leaves room for the base64 overhead of an image plus the JSON around it.
func maxBodyBytes(maxMediaBytes int) int64 {
	return int64(maxMediaBytes)*4/3 + 64*1024
}
