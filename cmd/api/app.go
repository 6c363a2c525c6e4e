package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/vendas-api/docs"
	"github.com/hugohenrick/vendas-api/internal/adapter/api/controller"
	"github.com/hugohenrick/vendas-api/internal/adapter/notification"
	"github.com/hugohenrick/vendas-api/internal/adapter/repository"
	"github.com/hugohenrick/vendas-api/internal/application/sales"
	"github.com/hugohenrick/vendas-api/internal/infrastructure/database"
	"github.com/hugohenrick/vendas-api/pkg/logger"
	"github.com/hugohenrick/vendas-api/pkg/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router         *gin.Engine
	db             *pgxpool.Pool
	saleController *controller.SaleController
	authController *controller.AuthController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	appLogger := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Aplicar migrações pendentes
	if err := database.RunMigrations(); err != nil {
		return nil, err
	}

	// Criar sink de notificações para os eventos de domínio
	sink := notification.NewLoggerSink(appLogger)

	// Criar repositórios
	saleRepo := repository.NewSaleRepository(db, sink, appLogger)
	userRepo := repository.NewUserRepository(db)

	// Criar serviço de vendas
	saleService := sales.NewService(saleRepo, appLogger)

	// Criar controllers
	saleController := controller.NewSaleController(saleService, appLogger)
	authController := controller.NewAuthController(userRepo, appLogger)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	app := &App{
		router:         router,
		db:             db,
		saleController: saleController,
		authController: authController,
	}
	app.setupRoutes()

	return app, nil
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes() {
	api := a.router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Rotas que não precisam de autenticação
	api.POST("/auth/login", a.authController.Login)
	api.POST("/users", a.authController.Register)

	// Rotas de vendas protegidas por autenticação
	salesRoutes := api.Group("/sales")
	salesRoutes.Use(middleware.AuthMiddleware())
	{
		salesRoutes.POST("", a.saleController.Create)
		salesRoutes.GET("", a.saleController.List)
		salesRoutes.GET("/:id", a.saleController.Get)
		salesRoutes.PUT("/:id", a.saleController.Update)
		salesRoutes.PATCH("/:id", a.saleController.Cancel)
	}

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
