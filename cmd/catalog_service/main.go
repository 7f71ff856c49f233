package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	catalogapp "github.com/justifyman/alansar/internal/catalog/app"
	catalogrepo "github.com/justifyman/alansar/internal/catalog/repository"
	memberapp "github.com/justifyman/alansar/internal/member/app"
	memberdomain "github.com/justifyman/alansar/internal/member/domain"
	memberrepo "github.com/justifyman/alansar/internal/member/repository"
	moderationapp "github.com/justifyman/alansar/internal/moderation/app"
	moderationrepo "github.com/justifyman/alansar/internal/moderation/repository"

	"github.com/justifyman/alansar/internal/api/handlers"
	"github.com/justifyman/alansar/internal/api/router"
	"github.com/justifyman/alansar/pkg/config"
	"github.com/justifyman/alansar/pkg/database"
	"github.com/justifyman/alansar/pkg/logger"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.CatalogService, config.EnvConfig.CatalogServiceLogPath)

	cfg := config.LoadConfig[config.Catalog](config.EnvConfig.CatalogService, config.EnvConfig.CatalogServiceYAMLPath)

	// gorm 連線給目錄與投稿的 record store
	sqlParams := fmt.Sprintf("postgres://%s:%s@%s:%d/%s", cfg.PostgreSQL.User, cfg.PostgreSQL.Password, cfg.PostgreSQL.Host, cfg.PostgreSQL.Port, cfg.PostgreSQL.Database)
	gormDB, err := database.NewPGConnection(database.Connection{
		ConnectStr:    sqlParams,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to postgreSQL database after retries",
			zap.String("address", fmt.Sprintf("[%s]", sqlParams)),
			zap.Error(err),
		)
	}

	// member repo 沿用 pgxpool
	pool, err := database.NewDatabaseConnection(database.Connection{
		ConnectStr:    sqlParams,
		RetryCount:    cfg.PostgreSQL.RetryCount,
		RetryInterval: time.Duration(cfg.PostgreSQL.RetryInterval),
	})
	if err != nil {
		logger.Log.Fatal(
			"Unable to connect to postgreSQL pool after retries",
			zap.Error(err),
		)
	}
	defer pool.Close()

	categoryRepo := catalogrepo.NewCategoryRepo(gormDB)
	videoRepo := catalogrepo.NewVideoRepo(gormDB)
	announcementRepo := catalogrepo.NewAnnouncementRepo(gormDB)
	heroRepo := catalogrepo.NewHeroRepo(gormDB)
	submissionRepo := moderationrepo.NewSubmissionRepo(gormDB)

	for _, m := range []interface{ AutoMigrate() error }{
		categoryRepo, videoRepo, announcementRepo, heroRepo, submissionRepo,
	} {
		if err := m.AutoMigrate(); err != nil {
			logger.Log.Fatal("auto migrate failed", zap.Error(err))
		}
	}

	// MinIO：管理端與使用者投稿各自的影片/縮圖 bucket
	minioClient, err := database.NewMinIOConnection(database.MinIOConnection{
		Endpoint: fmt.Sprintf("%s:%d", cfg.MinIO.Host, cfg.MinIO.Port),
		User:     cfg.MinIO.User,
		Password: cfg.MinIO.Password,
		Buckets: []string{
			cfg.MinIO.VideoBucket,
			cfg.MinIO.ThumbnailBucket,
			cfg.MinIO.UserVideoBucket,
			cfg.MinIO.UserThumbnailBucket,
		},
		UseSSL:        cfg.MinIO.UseSSL,
		RetryCount:    cfg.MinIO.RetryCount,
		RetryInterval: cfg.MinIO.RetryInterval,
	})
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect minio err : %v", err))
	}

	// Mongo 審核軌跡
	mongoParams := fmt.Sprintf("mongodb://%s:%s@%s:%d", cfg.Mongo.User, cfg.Mongo.Password, cfg.Mongo.Host, cfg.Mongo.Port)
	mongoDB, err := database.NewMongoDB(context.Background(), database.Connection{
		ConnectStr:    mongoParams,
		RetryCount:    cfg.Mongo.RetryCount,
		RetryInterval: time.Duration(cfg.Mongo.RetryInterval),
	}, cfg.Mongo.Database)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect mongo err : %v", err))
	}
	auditRepo := moderationrepo.NewMongoAuditRepo(mongoDB.Database)

	// Kafka 審核事件
	eventWriter, err := database.NewKafkaWriterWithRetry(database.KafkaConnection{
		Brokers:       cfg.Kafka.Brokers,
		Topic:         cfg.Kafka.Topic,
		RetryCount:    cfg.Kafka.RetryCount,
		RetryInterval: cfg.Kafka.RetryInterval,
	})
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect kafka err : %v", err))
	}
	defer eventWriter.Close()

	// Redis session
	masterName, sentinel := config.GetRedisSetting()
	redisRepo, err := database.NewRedisRepository[memberdomain.MemberSession](masterName, cfg.Redis.Addr, sentinel, cfg.Redis.RedisDB)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf("connect redis err : %v", err))
	}

	catalogUseCase := catalogapp.NewCatalogUseCase(categoryRepo, videoRepo, announcementRepo, heroRepo, minioClient, catalogapp.CatalogBuckets{
		Video:     cfg.MinIO.VideoBucket,
		Thumbnail: cfg.MinIO.ThumbnailBucket,
	})
	uploadUseCase := moderationapp.NewUploadUseCase(submissionRepo, minioClient, moderationapp.UploadBuckets{
		Video:     cfg.MinIO.UserVideoBucket,
		Thumbnail: cfg.MinIO.UserThumbnailBucket,
	})
	moderationUseCase := moderationapp.NewModerationUseCase(submissionRepo, categoryRepo, videoRepo, auditRepo, eventWriter)
	memberUseCase := memberapp.NewMemberUseCase(memberrepo.NewMemberRepository(pool), cfg.SessionTTL*time.Minute, redisRepo)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	uploadHandler := handlers.NewUploadHandler(uploadUseCase)
	moderationHandler := handlers.NewModerationHandler(moderationUseCase)
	adminHandler := handlers.NewAdminHandler(catalogUseCase)
	memberHandler := handlers.NewMemberHandler(memberUseCase)

	r := fiber.New(fiber.Config{
		BodyLimit: 512 * 1024 * 1024,
	})

	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.CatalogServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
	}))

	router.RegisterRoutes(r, catalogHandler, uploadHandler, moderationHandler, adminHandler, memberHandler)

	if err := r.Listen(cfg.IP + ":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
