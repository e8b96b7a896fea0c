package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venueadmin/internal/adapters/httpapi"
	"venueadmin/internal/adapters/reminder"
	"venueadmin/internal/application"
	"venueadmin/internal/config"
	"venueadmin/internal/infrastructure/auth"
	"venueadmin/internal/infrastructure/database"
	"venueadmin/internal/infrastructure/i18n"
	"venueadmin/internal/infrastructure/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error de configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Error al inicializar la base de datos: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Error al aplicar migraciones: %v", err)
	}

	eventRepo := database.NewEventRepository(pool)
	paymentRepo := database.NewPaymentRepository(pool)

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	notifier := notify.NewLogNotifier(translator, cfg.DefaultLocale)
	authenticator := auth.NewStaticAuthenticator(cfg.Credentials)

	eventService := application.NewEventService(eventRepo, paymentRepo)
	paymentService := application.NewPaymentService(paymentRepo, eventRepo, notifier)
	metricsService := application.NewMetricsService(eventRepo)

	handler := httpapi.NewHandler(eventService, paymentService, metricsService, translator, authenticator)

	schedulerCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()
	scheduler := reminder.NewScheduler(eventService, notifier, cfg.ReminderInterval, cfg.ReminderWindow)
	go scheduler.Run(schedulerCtx)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("✅ Servidor escuchando en %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Error del servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Apagando el servidor…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Error en el apagado: %v", err)
	}
	log.Println("Servidor detenido.")
}
