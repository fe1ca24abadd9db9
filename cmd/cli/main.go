package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"grouporders/cmd"
	"grouporders/internal/adapters/in/cli"
	"grouporders/internal/adapters/out/postgres"
	"grouporders/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
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
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := context.Background()
	seedHandler := app.CreateSeedCatalogCommandHandler()
	if err := seedHandler.Handle(ctx, commands.NewSeedCatalogCommand()); err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}

	console := cli.NewConsole(
		os.Stdin,
		os.Stdout,
		app.CreateOrderLoader(logger),
		app.CreateGroupPendingOrdersCommandHandler(),
		app.CreateChangeGroupOrderStatusCommandHandler(),
		app.CreateGetRecentGroupOrdersQueryHandler(),
		app.CreateGetUngroupedOrdersQueryHandler(),
	)
	if err := console.Run(ctx); err != nil {
		log.Fatalf("Console error: %v", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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
