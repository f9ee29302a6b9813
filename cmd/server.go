package cmd

import (
	"feedbacker/internal/config"
	"feedbacker/internal/core"
	"feedbacker/internal/db"
	"feedbacker/internal/http/handler"
	"feedbacker/internal/http/handler/middleware"
	"feedbacker/internal/http/payload"
	"feedbacker/internal/http/server"
	"feedbacker/internal/repository"
	"feedbacker/internal/session"
	"feedbacker/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("feedbacker", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewFeedbackRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// session store
	redisClient, err := session.NewRedisClient(config.RedisURL)
	if err != nil {
		logger.Errorw("failed to connect to redis", "error", err)
		return err
	}
	sessions := session.NewManager(redisClient)

	// core service
	feedbacker := core.NewFeedbacker(logger, repo)

	// handler
	fbHlr := handler.NewFeedbackHandler(
		logger,
		payload.Decoder{},
		feedbacker,
		sessions)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Home, fbHlr.HandleHome)
	mux.HandleFunc(handler.Register, fbHlr.HandleRegister)
	mux.HandleFunc(handler.Login, fbHlr.HandleLogin)
	mux.HandleFunc(handler.Logout, fbHlr.HandleLogout)
	mux.HandleFunc(handler.GetProfile, fbHlr.HandleGetProfile)
	mux.HandleFunc(handler.DeleteUser, fbHlr.HandleDeleteUser)
	mux.HandleFunc(handler.CreateFeedback, fbHlr.HandleCreateFeedback)
	mux.HandleFunc(handler.GetFeedback, fbHlr.HandleGetFeedback)
	mux.HandleFunc(handler.UpdateFeedback, fbHlr.HandleUpdateFeedback)
	mux.HandleFunc(handler.DeleteFeedback, fbHlr.HandleDeleteFeedback)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
