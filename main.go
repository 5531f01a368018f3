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

	"videotube/infrastructure/cache"
	"videotube/infrastructure/configuration"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/persistence"
	"videotube/infrastructure/pubsub"
	httpHandler "videotube/interfaces/http"
	"videotube/server"
	"videotube/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	mongoClient, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to MongoDB")
		os.Exit(1)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected successfully")
	db := mongoClient.Database(configuration.C.Database.Mongo.Name)

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - refresh tokens will not be persisted")
		redisClient = nil
	}

	pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("PubSub not available - continuing without event publishing")
		pubSubClient = nil
	}
	eventPublisher := pubsub.NewEventPublisher(pubSubClient, configuration.C.Pubsub.Topic)

	userRepository := persistence.NewUserRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	commentRepository := persistence.NewCommentRepository(db)
	likeRepository := persistence.NewLikeRepository(db)
	playlistRepository := persistence.NewPlaylistRepository(db)
	subscriptionRepository := persistence.NewSubscriptionRepository(db)
	tweetRepository := persistence.NewTweetRepository(db)
	dashboardRepository := persistence.NewDashboardRepository(db)

	tokenStore := cache.NewTokenStore(redisClient)

	userUsecase := usecase.NewUserUsecase(userRepository, tokenStore)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, userRepository, commentRepository, likeRepository, eventPublisher)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository)
	likeUsecase := usecase.NewLikeUsecase(likeRepository)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepository, videoRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, userRepository)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepository)
	dashboardUsecase := usecase.NewDashboardUsecase(dashboardRepository)

	router := server.InitiateRouter(server.Handlers{
		User:         httpHandler.NewUserHandler(userUsecase),
		Video:        httpHandler.NewVideoHandler(videoUsecase),
		Comment:      httpHandler.NewCommentHandler(commentUsecase),
		Like:         httpHandler.NewLikeHandler(likeUsecase),
		Playlist:     httpHandler.NewPlaylistHandler(playlistUsecase),
		Subscription: httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		Tweet:        httpHandler.NewTweetHandler(tweetUsecase),
		Dashboard:    httpHandler.NewDashboardHandler(dashboardUsecase),
		Health:       httpHandler.NewHealthHandler(mongoClient),
	}, userRepository)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	_ = mongoClient.Disconnect(shutdownCtx)

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
