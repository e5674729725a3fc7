package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ojlab/discussions/internal/authz"
	"github.com/ojlab/discussions/internal/repository"
	mysqlRepo "github.com/ojlab/discussions/internal/repository/mysql"
	"github.com/ojlab/discussions/internal/repository/mysql/model"
	redisCache "github.com/ojlab/discussions/internal/repository/redis"
	"github.com/ojlab/discussions/internal/rest"
	"github.com/ojlab/discussions/internal/rest/middleware"
	"github.com/ojlab/discussions/internal/usecase/discussion"
	"github.com/ojlab/discussions/internal/usecase/report"
	"github.com/ojlab/discussions/internal/workers"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// Migrate the tables this service owns. Problems and Identities belong to
	// the platform and are only read.
	err = db.AutoMigrate(
		&model.Discussion{},
		&model.Reply{},
		&model.Vote{},
		&model.Report{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	discussionRepo := mysqlRepo.NewDiscussionRepository(db)
	replyRepo := mysqlRepo.NewReplyRepository(db)
	voteRepo := mysqlRepo.NewVoteRepository(db)
	reportRepo := mysqlRepo.NewReportRepository(db)
	problemReader := mysqlRepo.NewProblemReader(db)

	// Identity lookups go through the cache-coordinating reader
	identityCache := redisCache.NewIdentityCache(client)
	identityReader := repository.NewIdentityReader(mysqlRepo.NewIdentityReader(db), identityCache)

	aggregator := repository.NewVoteAggregator(voteRepo, discussionRepo)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recounter := workers.NewRecountWorker(aggregator)
	go recounter.Start(ctx)

	// Build service Layer
	roleAuthz := authz.NewRoleAuthorizer()
	discussionSvc := discussion.NewService(
		discussionRepo, replyRepo, voteRepo,
		problemReader, identityReader,
		aggregator, roleAuthz, recounter,
	)
	reportSvc := report.NewService(
		reportRepo, discussionRepo, replyRepo,
		problemReader, identityReader, roleAuthz,
	)
	discussionHandler := rest.NewDiscussionHandler(discussionSvc)
	reportHandler := rest.NewReportHandler(reportSvc)

	gatewaySecret := os.Getenv("GATEWAY_JWT_SECRET")
	if gatewaySecret == "" {
		log.Fatal("GATEWAY_JWT_SECRET is required")
	}
	authMiddleware := middleware.AuthMiddleware(gatewaySecret)

	// Register routes
	route.GET("/problems/:alias/discussions", discussionHandler.List)
	route.GET("/discussions/:id/replies", discussionHandler.ListReplies)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/discussions", discussionHandler.Store)
		authorized.PUT("/discussions/:id", discussionHandler.Update)
		authorized.DELETE("/discussions/:id", discussionHandler.Delete)
		authorized.POST("/discussions/:id/vote", discussionHandler.Vote)
		authorized.POST("/discussions/:id/replies", discussionHandler.StoreReply)
		authorized.PUT("/replies/:id", discussionHandler.UpdateReply)
		authorized.POST("/discussions/:id/reports", reportHandler.Store)

		authorized.GET("/admin/discussion-reports", reportHandler.ListOpen)
		authorized.POST("/admin/discussion-reports/:id/resolve", reportHandler.Resolve)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
