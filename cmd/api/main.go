package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/jhoicas/Empleados-api/internal/application/auth"
	appemployee "github.com/jhoicas/Empleados-api/internal/application/employee"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/staticdata"
	httpRouter "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

	// Listas estáticas: sin credenciales no hay login, sin departamentos no
	// hay formulario. Cualquier fallo aquí aborta el arranque.
	creds, err := staticdata.LoadCredentials(cfg.Intake.UsersFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar credenciales")
	}
	catalog, err := staticdata.LoadDepartments(cfg.Intake.DepartmentsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar departamentos")
	}
	log.Info().
		Int("admins", len(creds.Admins)).
		Int("users", len(creds.Users)).
		Int("departments", catalog.Len()).
		Msg("listas estáticas cargadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	employeeRepo := postgres.NewEmployeeRepository(pool)
	submitUC := appemployee.NewSubmitUseCase(employeeRepo, catalog, cfg.Intake.FailOpenOnCheckError, log)
	authUC := appauth.NewAuthUseCase(creds.Admins, creds.Users, appauth.JWTConfig{
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

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		SubmitUC:  submitUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
