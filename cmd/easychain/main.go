package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/sfy-labs/easychain/internal/blockchain"
	"github.com/sfy-labs/easychain/internal/config"
	"github.com/sfy-labs/easychain/internal/dashboard"
	"github.com/sfy-labs/easychain/internal/http_api"
	"github.com/sfy-labs/easychain/internal/notificator"
	"github.com/sfy-labs/easychain/internal/repository"
	"github.com/sfy-labs/easychain/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "easychain",
		Usage: "EasyChain is the dashboard service for the supply-chain traceability contract",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "postgres-user", Aliases: []string{"u"}, Usage: "Postgres user"},
			&cli.StringFlag{Name: "postgres-password", Aliases: []string{"p"}, Usage: "Postgres password"},
			&cli.StringFlag{Name: "postgres-host", Aliases: []string{"t"}, Usage: "Postgres host"},
			&cli.IntFlag{Name: "postgres-port", Aliases: []string{"P"}, Usage: "Postgres port"},
			&cli.StringFlag{Name: "postgres-db", Aliases: []string{"d"}, Usage: "Postgres database name"},
			&cli.StringFlag{Name: "blockchain-service-url", Aliases: []string{"b"}, Usage: "Blockchain service URL"},
			&cli.StringFlag{Name: "smart-contract-address", Aliases: []string{"s"}, Usage: "Smart contract address"},
			&cli.IntFlag{Name: "api-port", Aliases: []string{"a"}, Usage: "API port"},
			&cli.BoolFlag{Name: "development", Aliases: []string{"D"}, Usage: "Development mode"},
		},
		Action: func(c *cli.Context) error {
			return run(c)
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	// Load configuration from environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	// Override with flags if set
	if c.IsSet("postgres-user") {
		cfg.PostgresUser = c.String("postgres-user")
	}
	if c.IsSet("postgres-password") {
		cfg.PostgresPassword = c.String("postgres-password")
	}
	if c.IsSet("postgres-host") {
		cfg.PostgresHost = c.String("postgres-host")
	}
	if c.IsSet("postgres-port") {
		cfg.PostgresPort = c.Int("postgres-port")
	}
	if c.IsSet("postgres-db") {
		cfg.PostgresDB = c.String("postgres-db")
	}
	if c.IsSet("blockchain-service-url") {
		cfg.BlockchainServiceURL = c.String("blockchain-service-url")
	}
	if c.IsSet("smart-contract-address") {
		cfg.SmartContractAddress = c.String("smart-contract-address")
	}
	if c.IsSet("api-port") {
		cfg.APIPort = c.Int("api-port")
	}
	if c.IsSet("development") {
		cfg.Development = c.Bool("development")
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}

	// Initialize database
	db, err := repository.NewPostgresDB(cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresHost, cfg.PostgresPort, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// Initialize blockchain service
	chainService := blockchain.NewGocore(cfg.BlockchainServiceURL, log, cfg)
	if err := chainService.Run(); err != nil {
		return fmt.Errorf("failed to start blockchain service: %v", err)
	}

	// Initialize notification transports; both are optional
	var telegramNotif *notificator.TelegramNotificator
	if cfg.TelegramBotToken != "" {
		telegramNotif, err = notificator.NewTelegramNotificator(log, cfg.TelegramBotToken, cfg.AdminTelegramChatID)
		if err != nil {
			return fmt.Errorf("failed to start telegram notificator: %v", err)
		}
	}
	var emailNotif *notificator.EmailNotificator
	if cfg.SMTPUser != "" {
		emailNotif = notificator.NewEmailNotificator(log, cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPSender)
	}
	notif := notificator.NewNotificator(log, telegramNotif, emailNotif)

	// Create the dashboard application
	dashboardApp := dashboard.NewDashboard(db, chainService, notif, log, cfg)

	apiServer := http_api.NewHTTPServer(dashboardApp, cfg.APIPort, cfg.AllowedOrigins, log)

	go apiServer.Start()

	// Wait for termination and shut down cleanly
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := apiServer.Shutdown(); err != nil {
		log.Error("Failed to shut down API server: ", err)
	}
	if err := chainService.Close(); err != nil {
		log.Error("Failed to close blockchain service: ", err)
	}

	return nil
}
