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
	"github.com/shopspring/decimal"

	appanalytics "github.com/agriconecta/agriconecta-api/internal/application/analytics"
	"github.com/agriconecta/agriconecta-api/internal/application/auth"
	"github.com/agriconecta/agriconecta-api/internal/application/orders"
	"github.com/agriconecta/agriconecta-api/internal/application/usecase"
	infraemail "github.com/agriconecta/agriconecta-api/internal/infrastructure/email"
	infrapdf "github.com/agriconecta/agriconecta-api/internal/infrastructure/pdf"
	"github.com/agriconecta/agriconecta-api/internal/infrastructure/postgres"
	infraqr "github.com/agriconecta/agriconecta-api/internal/infrastructure/qrcode"
	httpRouter "github.com/agriconecta/agriconecta-api/internal/interfaces/http"
	"github.com/agriconecta/agriconecta-api/pkg/config"
	"github.com/agriconecta/agriconecta-api/pkg/logger"

	_ "github.com/agriconecta/agriconecta-api/docs"
)

// @title           AgriConecta API
// @version         1.0
// @description     Marketplace agrícola: catálogo, pedidos e pagamentos por transferência.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("a iniciar aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("ligação a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := infraemail.NewSMTPNotifier(cfg.SMTP, log)
	pay := orders.PaymentInfo{
		BankName:    cfg.Payment.BankName,
		IBAN:        cfg.Payment.IBAN,
		Beneficiary: cfg.Payment.Beneficiary,
		WhatsApp:    cfg.Payment.WhatsApp,
	}

	deliveryFee, err := decimal.NewFromString(cfg.Orders.DefaultDeliveryFee)
	if err != nil {
		log.Fatal().Err(err).Str("valor", cfg.Orders.DefaultDeliveryFee).Msg("ORDERS_DEFAULT_DELIVERY_FEE inválida")
	}

	createOrderUC := orders.NewCreateOrderUseCase(txRunner, userRepo, notifier, log, deliveryFee)
	transitionUC := orders.NewTransitionUseCase(txRunner, orderRepo, userRepo, notifier, log, cfg.Orders.StrictTransitions)
	orderQueries := orders.NewQueryUseCase(orderRepo)

	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	invoicePDFUC := orders.NewInvoicePDFUseCase(orderRepo, userRepo, pdfGenerator, pay)
	qrGen := infraqr.New()

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AgriConecta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		CategoryUC:   categoryUC,
		UserUC:       userUC,
		CreateOrder:  createOrderUC,
		Transition:   transitionUC,
		OrderQueries: orderQueries,
		InvoicePDF:   invoicePDFUC,
		QRGen:        qrGen,
		Pay:          pay,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP terminado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de paragem recebido, a fechar o servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("paragem do servidor")
	}

	log.Info().Msg("aplicação parada")
}
