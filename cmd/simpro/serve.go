package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/jhoicas/simpro-reconcile/internal/application/reconcile"
	httpRouter "github.com/jhoicas/simpro-reconcile/internal/interfaces/http"
)

func newServeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Concilia una vez y publica el resultado en una API HTTP de solo lectura",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), e)
		},
	}
}

func serve(ctx context.Context, e *env) error {
	res, err := e.reconcile(ctx)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		AppName:               e.cfg.App.Name,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Query:       reconcile.NewQueryUseCase(res),
		ServiceName: e.cfg.App.Name,
		GeneratedAt: res.GeneratedAt,
		JWTSecret:   e.cfg.JWT.Secret,
		Log:         e.log,
	})
	if e.cfg.JWT.Secret == "" {
		e.log.Warn().Msg("JWT_SECRET vacío: /api queda sin autenticación")
	}

	errCh := make(chan error, 1)
	go func() {
		e.log.Info().Str("addr", e.cfg.HTTP.Addr()).Msg("API de revisión escuchando")
		errCh <- app.Listen(e.cfg.HTTP.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	e.log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		e.log.Error().Err(err).Msg("apagado del servidor")
	}
	e.log.Info().Msg("servidor detenido")
	return nil
}
