package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/fitlane/GMS-AppointmentService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/fitlane/GMS-AppointmentService/internal/api/handlers/get_appointment"
	listAppointmentsHandler "github.com/fitlane/GMS-AppointmentService/internal/api/handlers/list_appointments"
	transitionAppointmentHandler "github.com/fitlane/GMS-AppointmentService/internal/api/handlers/transition_appointment"
	"github.com/fitlane/GMS-AppointmentService/internal/api/middleware"
	"github.com/fitlane/GMS-AppointmentService/internal/config"
	appointmentRepo "github.com/fitlane/GMS-AppointmentService/internal/infra/storage/appointment"
	memberServiceClient "github.com/fitlane/GMS-AppointmentService/internal/integrations/memberservice"
	scheduleServiceClient "github.com/fitlane/GMS-AppointmentService/internal/integrations/scheduleservice"
	staffServiceClient "github.com/fitlane/GMS-AppointmentService/internal/integrations/staffservice"
	appointmentsService "github.com/fitlane/GMS-AppointmentService/internal/service/appointments"
	createAppointmentUC "github.com/fitlane/GMS-AppointmentService/internal/usecase/create_appointment"
	"github.com/fitlane/GMS-AppointmentService/pkg/dbmetrics"
	"github.com/fitlane/GMS-AppointmentService/pkg/logger"
	"github.com/fitlane/GMS-AppointmentService/pkg/metrics"
	"github.com/fitlane/GMS-AppointmentService/pkg/simpletxmanager"
	"github.com/fitlane/GMS-AppointmentService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting GMS-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	scheduleClient := scheduleServiceClient.NewClient(
		cfg.ScheduleService.URL,
		time.Duration(cfg.ScheduleService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s, MemberService=%s, ScheduleService=%s)",
		cfg.StaffService.URL, cfg.MemberService.URL, cfg.ScheduleService.URL)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var appointmentRepository *appointmentRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use case создания записи
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		staffClient,
		memberClient,
		scheduleClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	transitionAppointment := transitionAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют заголовков X-User-ID / X-User-Role
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание записи на тренировку
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей (с учётом роли, пагинацией и счётчиками статусов)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Смена статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status", transitionAppointment.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
