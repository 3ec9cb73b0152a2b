package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/auth"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/usecase"
)

// RouterDeps dependências do router. AuthUC, UserUC e HistoryUC são nil quando a API roda sem banco:
// nesse modo só as rotas públicas de simulação, referência e relatórios são registradas.
type RouterDeps struct {
	SimulationUC *usecase.SimulationUseCase
	ReportUC     *usecase.ReportUseCase
	AdvisorUC    *usecase.AdvisorUseCase
	HistoryUC    *usecase.HistoryUseCase
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Simulações (público)
	sims := api.Group("/simulations")
	simHandler := NewSimulationHandler(deps.SimulationUC)
	sims.Post("/compare", simHandler.Compare)
	sims.Post("/analyze", simHandler.Analyze)
	sims.Post("/sensitivity", simHandler.Sensitivity)
	sims.Post("/regimes", simHandler.Regimes)
	sims.Post("/breakeven", simHandler.Breakeven)
	sims.Post("/cash-flow", simHandler.CashFlow)
	sims.Get("/roi", simHandler.ROI)
	sims.Post("/recommendations", simHandler.Recommendations)
	sims.Post("/product-impact", simHandler.ProductImpact)

	// Referência (público)
	ref := api.Group("/reference")
	refHandler := NewReferenceHandler(deps.SimulationUC)
	ref.Get("/calendar", refHandler.Calendar)
	ref.Get("/states", refHandler.States)
	ref.Get("/countries", refHandler.Countries)

	// Relatórios (público)
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Post("/pdf", reportHandler.PDF)
	reports.Post("/text", reportHandler.Text)

	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Parecer IA (protegido; 503 sem chave configurada)
	if deps.AdvisorUC != nil {
		adviceHandler := NewAdviceHandler(deps.AdvisorUC)
		sims.Post("/advice", requireAuth, RequireFeature("parecer IA", deps.AdvisorUC), adviceHandler.Advise)
	}

	if deps.AuthUC == nil {
		return
	}

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Histórico (protegido)
	if deps.HistoryUC != nil {
		history := api.Group("/history", requireAuth)
		historyHandler := NewHistoryHandler(deps.HistoryUC)
		history.Post("/", historyHandler.Save)
		history.Get("/", historyHandler.List)
		history.Get("/latest", historyHandler.Latest)
		history.Get("/:id", historyHandler.Get)
		history.Delete("/:id", historyHandler.Delete)
	}
}
