package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"orders/cmd"
	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/catalogrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/queue"
	"orders/internal/adapters/out/ws"
	"orders/internal/core/application/eventmsg"
	"orders/internal/core/ports"
	"orders/internal/jobs"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	watermillLogger := watermill.NewSlogLogger(logger)
	publisher, err := queue.NewAmqpPublisher(configs.AmqpURI, watermillLogger)
	if err != nil {
		log.Fatalf("Failed to connect publisher to broker: %v", err)
	}
	subscriber, err := queue.NewAmqpSubscriber(configs.AmqpURI, watermillLogger)
	if err != nil {
		log.Fatalf("Failed to connect subscriber to broker: %v", err)
	}

	bus, err := queue.NewBus(publisher, subscriber, watermillLogger)
	if err != nil {
		log.Fatalf("Failed to create message bus: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, bus)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	subscribeWorkers(&app, bus, hub)
	go func() {
		if runErr := bus.Run(ctx); runErr != nil {
			logger.Error("Message bus stopped", "error", runErr)
		}
	}()

	jobManager := jobs.NewJobManager(
		app.CreateReconcileDeliveryTermsCommandHandler(),
		configs.ReconciliationGrace,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := buildWebServer(&app, hub)
	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil && startErr != http.ErrServerClosed {
			logger.Error("Web server stopped", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
	if err = bus.Close(); err != nil {
		logger.Error("Message bus shutdown failed", "error", err)
	}
}

func subscribeWorkers(app *cmd.CompositionRoot, bus *queue.Bus, hub *ws.Hub) {
	registration := app.CreateRegistrationWorker()
	scheduling := app.CreateDeliverySchedulingWorker()
	approval := app.CreateApprovalWorker()
	notification := app.CreateNotificationWorker(hub)

	mustSubscribe(bus, eventmsg.RegisterOrderRoute, queue.DefaultPolicy(), registration.Handle)
	mustSubscribe(bus, eventmsg.OrderCreatedRoute, queue.DefaultPolicy(), scheduling.Handle)
	mustSubscribe(bus, eventmsg.ApproveOrderRoute, queue.DefaultPolicy(), approval.Handle)
	mustSubscribe(bus, eventmsg.OrderNotificationRoute, queue.NotificationPolicy(), notification.Handle)
}

func mustSubscribe(bus *queue.Bus, route string, policy queue.Policy, handler ports.QueueHandler) {
	if err := bus.Subscribe(route, policy, handler); err != nil {
		log.Fatalf("Failed to subscribe route %s: %v", route, err)
	}
}

func buildWebServer(app *cmd.CompositionRoot, hub *ws.Hub) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateSubmitOrderCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateRequestApprovalCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
		app.CreateCatalogUoWFactory(),
		hub,
	)
	server.RegisterRoutes(e)

	return e
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&catalogrepo.CustomerDTO{},
		&catalogrepo.PaymentConditionDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.DeliveryTermDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		AmqpURI:             goDotEnvVariable("AMQP_URI"),
		DeliveryDays:        intEnvVariable("DELIVERY_DAYS", 10),
		ReconciliationGrace: durationEnvVariable("RECONCILIATION_GRACE", time.Minute),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func intEnvVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s value: %v", key, err)
	}
	return value
}

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s value: %v", key, err)
	}
	return value
}
