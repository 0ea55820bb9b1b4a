package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"beautestore/internal/handlers"
	"beautestore/internal/middleware"
	"beautestore/internal/services"
	"beautestore/internal/store"
	"beautestore/pkg/rabbitmq"
)

func setConfigDefaults() {
	viper.SetDefault("APP_PORT", ":4000")
	viper.SetDefault("STORE_DRIVER", "file") // file | sqlite | postgres
	viper.SetDefault("DATA_FILE", "data/db.json")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("MESSAGES_LOG", "messages.log")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("AUTH_REQUIRED", false)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()
}

// openStore builds the persistence backend selected by STORE_DRIVER.
func openStore() (store.Store, error) {
	switch driver := viper.GetString("STORE_DRIVER"); driver {
	case "file":
		return store.NewFileStore(viper.GetString("DATA_FILE"))
	case "sqlite":
		dsn := viper.GetString("DATABASE_DSN")
		if dsn == "" {
			dsn = "data/store.db"
		}
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return store.NewGormStore(db)
	case "postgres":
		db, err := gorm.Open(postgres.Open(viper.GetString("DATABASE_DSN")), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return store.NewGormStore(db)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}
}

// seedAdmin makes sure the single back-office account exists. The file
// backend seeds it with its default document; relational deployments
// get it here.
func seedAdmin(st store.Store) error {
	users, err := st.Get(store.Users)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	return st.Insert(store.Users, store.Record{
		"id":        "user-1",
		"full_name": "Admin Beauté Store",
		"email":     "admin@beautestore.ci",
		"role":      "admin",
	})
}

// NewApp wires the store, services and handlers into a Fiber app,
// reading its configuration from the environment.
func NewApp() (*fiber.App, *rabbitmq.Client, error) {
	setConfigDefaults()

	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	if err := seedAdmin(st); err != nil {
		return nil, nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	// The broker is optional: without it order events are skipped.
	var mqClient *rabbitmq.Client
	var events services.EventPublisher
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			events = mqClient
		}
	}

	catalogService := services.NewCatalogService(st)
	orderService := services.NewOrderService(st, events)
	settingsService := services.NewSettingsService(st)
	authService := services.NewAuthService(st, viper.GetString("JWT_SECRET"))

	if password := viper.GetString("ADMIN_PASSWORD"); password != "" {
		if err := authService.SetPassword(password); err != nil {
			return nil, nil, fmt.Errorf("failed to set admin password: %w", err)
		}
	}

	uploadDir := viper.GetString("UPLOAD_DIR")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())
	app.Static("/uploads", uploadDir)

	admin := middleware.AdminRequired(authService, viper.GetBool("AUTH_REQUIRED"))

	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	handlers.NewProductHandler(catalogService).RegisterRoutes(api, admin)
	handlers.NewCategoryHandler(catalogService).RegisterRoutes(api, admin)
	handlers.NewOrderHandler(orderService).RegisterRoutes(api, admin)
	handlers.NewSettingsHandler(settingsService).RegisterRoutes(api, admin)
	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewUploadHandler(uploadDir).RegisterRoutes(api, admin)
	handlers.NewIntegrationsHandler(viper.GetString("MESSAGES_LOG")).RegisterRoutes(api)

	return app, mqClient, nil
}

func main() {
	app, mqClient, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	if mqClient != nil {
		defer mqClient.Close()

		// Log order events so a single-node deployment still has an
		// audit trail without a dedicated worker.
		go func() {
			err := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
				log.Printf("Order event %s: %s", msg.RoutingKey, string(msg.Body))
				return nil
			})
			if err != nil {
				log.Printf("Failed to start order event consumer: %v", err)
			}
		}()
	}

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
