package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"grouporders/cmd"
	httpin "grouporders/internal/adapters/in/http"
	"grouporders/internal/adapters/out/postgres"
	"grouporders/internal/core/application/usecases/commands"
	"grouporders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	seedCatalog(&app, logger)

	jobManager := jobs.NewJobManager(
		app.CreateGroupPendingOrdersCommandHandler(),
		configs.GroupingSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		GroupingSchedule: goDotEnvVariable("GROUPING_SCHEDULE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func seedCatalog(app *cmd.CompositionRoot, logger *slog.Logger) {
	ctx := context.Background()
	handler := app.CreateSeedCatalogCommandHandler()

	if err := handler.Handle(ctx, commands.NewSeedCatalogCommand()); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}
	logger.InfoContext(ctx, "Catalog ready")
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateOrderLoader(logger),
		app.CreateGroupPendingOrdersCommandHandler(),
		app.CreateChangeGroupOrderStatusCommandHandler(),
		app.CreateGetRecentGroupOrdersQueryHandler(),
		app.CreateGetUngroupedOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
