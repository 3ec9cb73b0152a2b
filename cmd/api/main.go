package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/auth"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/ports"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/usecase"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
	infraai "github.com/araujocontabil/reforma-tributaria-api/internal/infrastructure/ai"
	"github.com/araujocontabil/reforma-tributaria-api/internal/infrastructure/export"
	infrapdf "github.com/araujocontabil/reforma-tributaria-api/internal/infrastructure/pdf"
	"github.com/araujocontabil/reforma-tributaria-api/internal/infrastructure/postgres"
	"github.com/araujocontabil/reforma-tributaria-api/internal/infrastructure/storage"
	httpRouter "github.com/araujocontabil/reforma-tributaria-api/internal/interfaces/http"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/config"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()

	engine := tributos.NewEngine(tributos.Parameters{
		SimplesCeiling:       cfg.Tax.SimplesCeiling,
		SimplesSubCeiling:    cfg.Tax.SimplesSubCeiling,
		PresumidoCeiling:     cfg.Tax.PresumidoCeiling,
		CapitalCreditMonths:  cfg.Tax.CapitalCreditMonths,
		MaterialityThreshold: cfg.Tax.MaterialityThreshold,
	})

	reportStorage, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("storage de relatórios")
	}

	// Parecer IA só com chave configurada
	var llm ports.LLMService
	if cfg.AI.AnthropicAPIKey != "" {
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	}

	deps := httpRouter.RouterDeps{
		SimulationUC: usecase.NewSimulationUseCase(engine, log, nil),
		ReportUC:     usecase.NewReportUseCase(engine, reportStorage, log, infrapdf.NewReportGenerator(), export.NewTextReport()),
		AdvisorUC:    usecase.NewAdvisorUseCase(llm, engine, time.Duration(cfg.AI.TimeoutSeconds)*time.Second),
		JWTSecret:    cfg.JWT.Secret,
	}

	// Sem banco a API sobe só com as rotas públicas de simulação
	if cfg.DB.Enabled() {
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
				log.Fatal().Err(err).Msg("migrações")
			}
			log.Info().Msg("migrações aplicadas")
		}

		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão com PostgreSQL")
		}
		defer pool.Close()

		userRepo := postgres.NewUserRepository(pool)
		simRepo := postgres.NewSimulationRepository(pool)
		txRunner := postgres.NewTxRunner(pool)

		deps.AuthUC = auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
		deps.UserUC = usecase.NewUserUseCase(userRepo)
		deps.HistoryUC = usecase.NewHistoryUseCase(simRepo, txRunner, engine, cfg.History.Limit, log)
	} else {
		log.Warn().Msg("banco não configurado: autenticação e histórico desabilitados")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Simulador da Reforma Tributária",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  cfg.App.Name,
			"database": cfg.DB.Enabled(),
			"ai":       llm != nil,
			"storage":  cfg.Storage.Driver,
		})
	})

	if cfg.Storage.Driver == "local" {
		app.Static(cfg.Storage.LocalBaseURL, cfg.Storage.LocalDir)
	}

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
