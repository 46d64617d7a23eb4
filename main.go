package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"markazy_backend/internals/configs"
	database "markazy_backend/internals/databases"
	scheduler "markazy_backend/internals/features/users/auth/scheduler"
	authStore "markazy_backend/internals/features/users/auth/store"
	"markazy_backend/internals/helpers/oss"
	middlewares "markazy_backend/internals/middlewares"
	routes "markazy_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing. The timeout context set here reaches every
	// query through the controllers' WithContext scoping.
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.CorsMiddleware())
	app.Use(middlewares.GlobalRateLimiter())

	// 🔌 DB connect + pool + schema
	database.ConnectDB()
	database.TunePool()
	database.Migrate()

	tokens := authStore.NewGormTokenStore(database.DB)
	scheduler.StartBlacklistCleanupScheduler(tokens)

	// 🖼 Object storage is optional; image features degrade without it.
	var images oss.ImageStorage
	if configs.GetEnv("OSS_BUCKET") != "" {
		client, err := oss.NewClient(oss.Config{
			Endpoint:        configs.GetEnv("OSS_ENDPOINT"),
			AccessKeyID:     configs.GetEnv("OSS_ACCESS_KEY_ID"),
			AccessKeySecret: configs.GetEnv("OSS_ACCESS_KEY_SECRET"),
			BucketName:      configs.GetEnv("OSS_BUCKET"),
			PublicBaseURL:   configs.GetEnv("OSS_PUBLIC_BASE_URL"),
		})
		if err != nil {
			log.Printf("⚠️ object storage disabled: %v", err)
		} else {
			images = client
			log.Println("✅ Object storage ready.")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	routes.SetupRoutes(app, database.DB, tokens, images)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
