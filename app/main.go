package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/go-realtime-comments/internal/events"
	"github.com/Guyuepp/go-realtime-comments/internal/realtime"
	"github.com/Guyuepp/go-realtime-comments/internal/repository"
	mysqlRepo "github.com/Guyuepp/go-realtime-comments/internal/repository/mysql"
	"github.com/Guyuepp/go-realtime-comments/internal/repository/mysql/model"
	myRedisCache "github.com/Guyuepp/go-realtime-comments/internal/repository/redis"
	"github.com/Guyuepp/go-realtime-comments/internal/rest"
	"github.com/Guyuepp/go-realtime-comments/internal/rest/middleware"
	"github.com/Guyuepp/go-realtime-comments/internal/usecase/comment"
	"github.com/Guyuepp/go-realtime-comments/internal/usecase/notification"
	"github.com/Guyuepp/go-realtime-comments/internal/usecase/user"
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, reading configuration from the environment")
	}
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	//prepare database
	db, err := openDB(cfg.DSN())
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	if err := db.AutoMigrate(&model.User{}, &model.Follow{}, &model.Comment{}, &model.CommentReaction{}, &model.Notification{}); err != nil {
		logrus.Fatal("failed to migrate database: ", err)
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr(),
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Prepare Repository
	// User相关的三层架构: DB层 -> Cache层 -> Repository协调层
	userDBRepo := mysqlRepo.NewUserRepository(db)
	userCache := myRedisCache.NewUserCache(client)
	userRepo := repository.NewUserRepository(userDBRepo, userCache)

	commentRepo := mysqlRepo.NewCommentRepository(db)
	notificationRepo := mysqlRepo.NewNotificationRepository(db)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)

	// Realtime delivery
	presence := realtime.NewPresence()
	hub := realtime.NewHub(presence)

	// 通知先落库再推送, 然后才广播到评论流
	bus := events.NewBus()
	dispatcher := notification.NewDispatcher(notificationRepo, userRepo, presence)
	bus.Subscribe("notifications", dispatcher, dispatcher.Events()...)
	feed := realtime.NewFeedBroadcaster(hub)
	bus.Subscribe("feed", feed, feed.Events()...)
	if len(cfg.KafkaBrokers) > 0 {
		sink := events.NewKafkaSink(events.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
		defer func() {
			if err := sink.Close(); err != nil {
				logrus.Error("got error when closing the kafka writer: ", err)
			}
		}()
		bus.Subscribe("kafka", sink)
		logrus.Infof("exporting events to kafka topic %s", cfg.KafkaTopic)
	}

	// Build service Layer
	commentSvc := comment.NewService(commentRepo, bloomRepo, userRepo, bus)
	notificationSvc := notification.NewService(notificationRepo, userRepo, commentRepo)
	userSvc := user.NewService(userRepo, bus)

	if err := commentSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatal("failed to init bloom filter: ", err)
	}

	commentHandler := rest.NewCommentHandler(commentSvc)
	notificationHandler := rest.NewNotificationHandler(notificationSvc)
	userHandler := rest.NewUserHandler(userSvc)
	socketHandler := rest.NewSocketHandler(hub, presence, cfg.JWTSecret, cfg.WSSendBuffer, cfg.CORSOrigins)
	healthHandler := rest.NewHealthHandler(hub, presence)

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS(cfg.CORSOrigins))

	route.GET("/health", healthHandler.Health)
	route.GET("/ws", socketHandler.Serve)

	api := route.Group("/")
	api.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))
	{
		api.GET("/comments", commentHandler.FetchComments)
		api.GET("/comments/:id", commentHandler.GetByID)
		api.GET("/users/:id", userHandler.GetByID)
		api.GET("/users/:id/followers", userHandler.Followers)
		api.GET("/users/:id/following", userHandler.Following)
	}

	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		authorized.POST("/comments", commentHandler.CreateComment)
		authorized.POST("/comments/:id/reply", commentHandler.Reply)
		authorized.POST("/comments/:id/like", commentHandler.Like)
		authorized.POST("/comments/:id/unlike", commentHandler.Dislike)
		authorized.POST("/comments/:id/dislike", commentHandler.Dislike)
		authorized.DELETE("/comments/:id", commentHandler.DeleteComment)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)
		authorized.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
		authorized.DELETE("/notifications/:id", notificationHandler.DeleteOne)
		authorized.DELETE("/notifications", notificationHandler.DeleteAll)

		authorized.GET("/users/me", userHandler.Me)
		authorized.POST("/users/follow/:targetId", userHandler.Follow)
		authorized.POST("/users/unfollow/:targetId", userHandler.Unfollow)
	}

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// websocket连接已被hijack, Shutdown不会等待它们
	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exiting")
}

func openDB(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			} else if err = sqlDB.Ping(); err == nil {
				return db, nil
			} else {
				logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				_ = sqlDB.Close()
			}
		}
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}
