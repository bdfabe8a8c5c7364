package main

import (
	"context"
	"os"

	"payboard/internal/domain/sqlite"
	"payboard/internal/domain/sqlite/repository"
	"payboard/internal/http/handler"
	authmw "payboard/internal/http/middleware"
	"payboard/internal/infrastructure/aws/storage"
	"payboard/internal/service"
	"payboard/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/payboard/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		log.Fatal("JWT_SECRET is not set")
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init S3 client
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}

	// Getting repos
	payrollRepo := repository.NewPayrollRepository(db)
	stateRepo := repository.NewStateRepository(db)
	municipalityRepo := repository.NewMunicipalityRepository(db)
	userRepo := repository.NewUserRepository(db)
	kanbanRepo := repository.NewKanbanRepository(db)

	// Getting services
	payrollService := service.NewPayrollService(payrollRepo, validate)
	stateService := service.NewStateService(stateRepo, validate)
	municipalityService := service.NewMunicipalityService(municipalityRepo, validate)
	userService := service.NewUserService(userRepo, validate, jwtSecret)
	kanbanService := service.NewKanbanService(kanbanRepo, s3Client, validate)

	// Getting handlers
	payrollRoutes := handler.NewPayrollDefault(payrollService)
	geoRoutes := handler.NewGeoDefault(stateService, municipalityService)
	userRoutes := handler.NewUserDefault(userService)
	kanbanRoutes := handler.NewKanbanDefault(kanbanService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("30M"))

	// Login and healthcheck stay outside the auth guard
	e.POST("/api/login", userRoutes.Login)
	e.POST("/api/logout", userRoutes.Logout)
	e.GET("/health", healthCheckRoute)

	api := e.Group("/api", authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{
		UserRepo:  userRepo,
		JWTSecret: jwtSecret,
	}))

	// Payroll
	api.GET("/payrolls", payrollRoutes.GetPayrolls)
	api.GET("/payrolls/:id", payrollRoutes.GetPayroll)
	api.POST("/payrolls", payrollRoutes.CreatePayroll)
	api.PATCH("/payrolls/:id", payrollRoutes.UpdatePayroll)
	api.DELETE("/payrolls/:id", payrollRoutes.DeletePayroll)

	// States
	api.GET("/states", geoRoutes.GetStates)
	api.GET("/states/:id", geoRoutes.GetState)
	api.POST("/states", geoRoutes.CreateState)
	api.PATCH("/states/:id", geoRoutes.UpdateState)
	api.DELETE("/states/:id", geoRoutes.DeleteState)

	// Municipalities
	api.GET("/municipalities", geoRoutes.GetMunicipalities)
	api.GET("/municipalities/:id", geoRoutes.GetMunicipality)
	api.POST("/municipalities", geoRoutes.CreateMunicipality)
	api.PATCH("/municipalities/:id", geoRoutes.UpdateMunicipality)
	api.DELETE("/municipalities/:id", geoRoutes.DeleteMunicipality)

	// Users
	api.GET("/users", userRoutes.GetUsers)
	api.GET("/users/:id", userRoutes.GetUser)
	api.POST("/users", userRoutes.CreateUser)
	api.PATCH("/users/:id", userRoutes.UpdateUser)
	api.PUT("/users/:id/password", userRoutes.UpdatePassword)
	api.DELETE("/users/:id", userRoutes.DeleteUser)

	// Kanban
	api.GET("/kanban/boards", kanbanRoutes.GetBoards)
	api.GET("/kanban/boards/mine", kanbanRoutes.GetMyBoards)
	api.POST("/kanban/boards", kanbanRoutes.CreateBoard)
	api.GET("/kanban/boards/:id", kanbanRoutes.GetBoard)
	api.PATCH("/kanban/boards/:id", kanbanRoutes.UpdateBoard)
	api.DELETE("/kanban/boards/:id", kanbanRoutes.DeleteBoard)
	api.POST("/kanban/boards/:id/columns", kanbanRoutes.CreateColumn)
	api.PATCH("/kanban/columns/:id", kanbanRoutes.UpdateColumn)
	api.DELETE("/kanban/columns/:id", kanbanRoutes.DeleteColumn)
	api.POST("/kanban/columns/:id/cards", kanbanRoutes.CreateCard)
	api.GET("/kanban/cards/:id", kanbanRoutes.GetCard)
	api.PATCH("/kanban/cards/:id", kanbanRoutes.UpdateCard)
	api.PUT("/kanban/cards/:id/move", kanbanRoutes.MoveCard)
	api.DELETE("/kanban/cards/:id", kanbanRoutes.DeleteCard)
	api.POST("/kanban/cards/:id/comments", kanbanRoutes.CreateComment)
	api.POST("/kanban/cards/:id/attachments", kanbanRoutes.UploadAttachment)
	api.DELETE("/kanban/attachments/:id", kanbanRoutes.DeleteAttachment)

	port := os.Getenv("PORT")
	if port == "" {
		port = "7070"
	}
	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
