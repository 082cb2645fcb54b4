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

	analyzeWeekHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/analyze_week"
	autoAssignHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/auto_assign"
	completeAssignmentHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/complete_assignment"
	createAssignmentHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/create_assignment"
	createRallyHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/create_rally"
	getRoutineHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/get_routine"
	getUnsyncedHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/get_unsynced"
	getWeekViewHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/get_week_view"
	removeAssignmentHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/remove_assignment"
	syncWeekHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/sync_week"
	updateOverrideHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/update_override"
	upsertRoutineHandler "github.com/m04kA/DWS-ScheduleService/internal/api/handlers/upsert_routine"
	"github.com/m04kA/DWS-ScheduleService/internal/api/middleware"
	"github.com/m04kA/DWS-ScheduleService/internal/config"
	assignmentRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/assignment"
	billingRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/billing"
	rallyRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/rally"
	routineRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/routine"
	slotsRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/slots"
	petServiceClient "github.com/m04kA/DWS-ScheduleService/internal/integrations/petservice"
	assignmentsService "github.com/m04kA/DWS-ScheduleService/internal/service/assignments"
	billingSyncService "github.com/m04kA/DWS-ScheduleService/internal/service/billingsync"
	routinesService "github.com/m04kA/DWS-ScheduleService/internal/service/routines"
	analyzeWeekUC "github.com/m04kA/DWS-ScheduleService/internal/usecase/analyze_week"
	autoAssignUC "github.com/m04kA/DWS-ScheduleService/internal/usecase/auto_assign"
	completeAssignmentUC "github.com/m04kA/DWS-ScheduleService/internal/usecase/complete_assignment"
	createAssignmentUC "github.com/m04kA/DWS-ScheduleService/internal/usecase/create_assignment"
	createRallyUC "github.com/m04kA/DWS-ScheduleService/internal/usecase/create_rally"
	getWeekViewUC "github.com/m04kA/DWS-ScheduleService/internal/usecase/get_week_view"
	updateOverrideUC "github.com/m04kA/DWS-ScheduleService/internal/usecase/update_override"
	"github.com/m04kA/DWS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/DWS-ScheduleService/pkg/logger"
	"github.com/m04kA/DWS-ScheduleService/pkg/metrics"
	"github.com/m04kA/DWS-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/DWS-ScheduleService/pkg/txmanager"
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

	log.Info("Starting DWS-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Параметры движка расписания (тарифы, вместимость, недельные квоты)
	engineCfg, err := cfg.Engine.ToEngineConfig()
	if err != nil {
		log.Fatal("Invalid engine configuration: %v", err)
	}

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

	// Инициализируем интеграционного клиента
	petClient := petServiceClient.NewClient(
		cfg.PetService.URL,
		time.Duration(cfg.PetService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (PetService=%s timeout=%ds)",
		cfg.PetService.URL, cfg.PetService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotsRepository      *slotsRepo.Repository
		assignmentRepository *assignmentRepo.Repository
		routineRepository    *routineRepo.Repository
		rallyRepository      *rallyRepo.Repository
		billingRepository    *billingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotsRepository = slotsRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		routineRepository = routineRepo.NewRepository(wrappedDB)
		rallyRepository = rallyRepo.NewRepository(wrappedDB)
		billingRepository = billingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotsRepository = slotsRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		routineRepository = routineRepo.NewRepository(db)
		rallyRepository = rallyRepo.NewRepository(db)
		billingRepository = billingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Создаем 15 шаблонов слотов, если их еще нет
	if err := slotsRepository.EnsureTemplates(context.Background(), engineCfg); err != nil {
		log.Fatal("Failed to ensure slot templates: %v", err)
	}
	log.Info("Slot templates ensured")

	// Инициализируем сервисы
	billingSyncSvc := billingSyncService.NewService(
		assignmentRepository,
		slotsRepository,
		billingRepository,
		petClient,
		txMgr,
		engineCfg,
		log,
	)
	routinesSvc := routinesService.NewService(
		routineRepository,
		petClient,
		engineCfg,
		log,
	)
	assignmentsSvc := assignmentsService.NewService(assignmentRepository, log)

	// Инициализируем use cases
	getWeekViewUseCase := getWeekViewUC.NewUseCase(
		slotsRepository,
		assignmentRepository,
		petClient,
		log,
	)
	createAssignmentUseCase := createAssignmentUC.NewUseCase(
		slotsRepository,
		assignmentRepository,
		routineRepository,
		petClient,
		txMgr,
		engineCfg,
		log,
	)
	autoAssignUseCase := autoAssignUC.NewUseCase(
		slotsRepository,
		assignmentRepository,
		routineRepository,
		txMgr,
		engineCfg,
		log,
	)
	updateOverrideUseCase := updateOverrideUC.NewUseCase(
		slotsRepository,
		assignmentRepository,
		txMgr,
		engineCfg,
		log,
	)
	completeAssignmentUseCase := completeAssignmentUC.NewUseCase(
		assignmentRepository,
		billingSyncSvc,
		log,
	)
	analyzeWeekUseCase := analyzeWeekUC.NewUseCase(
		slotsRepository,
		assignmentRepository,
		routineRepository,
		engineCfg,
		log,
	)
	createRallyUseCase := createRallyUC.NewUseCase(
		slotsRepository,
		assignmentRepository,
		rallyRepository,
		txMgr,
		engineCfg,
		log,
	)

	// Инициализируем handlers
	getWeekView := getWeekViewHandler.NewHandler(getWeekViewUseCase, log)
	analyzeWeek := analyzeWeekHandler.NewHandler(analyzeWeekUseCase, log)
	createAssignment := createAssignmentHandler.NewHandler(createAssignmentUseCase, log)
	removeAssignment := removeAssignmentHandler.NewHandler(assignmentsSvc, log)
	completeAssignment := completeAssignmentHandler.NewHandler(completeAssignmentUseCase, log)
	autoAssign := autoAssignHandler.NewHandler(autoAssignUseCase, log)
	updateOverride := updateOverrideHandler.NewHandler(updateOverrideUseCase, log)
	upsertRoutine := upsertRoutineHandler.NewHandler(routinesSvc, log)
	getRoutine := getRoutineHandler.NewHandler(routinesSvc, log)
	createRally := createRallyHandler.NewHandler(createRallyUseCase, log)
	syncWeek := syncWeekHandler.NewHandler(billingSyncSvc, log)
	getUnsynced := getUnsyncedHandler.NewHandler(billingSyncSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка недели с эффективными параметрами слотов и назначениями
	api.HandleFunc("/weeks/{year}/{week}/slots", getWeekView.Handle).Methods(http.MethodGet)

	// Аналитика недели: загрузка, покрытие рутин, здоровье расписания
	api.HandleFunc("/weeks/{year}/{week}/analysis", analyzeWeek.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Назначения ---
	// Запись собаки в слот
	protected.HandleFunc("/assignments", createAssignment.Handle).Methods(http.MethodPost)

	// Удаление назначения
	protected.HandleFunc("/assignments/{id}", removeAssignment.Handle).Methods(http.MethodDelete)

	// Отметка о выполненной прогулке + синхронизация с биллингом
	protected.HandleFunc("/assignments/{id}/complete", completeAssignment.Handle).Methods(http.MethodPatch)

	// Автоподбор слотов по рутине собаки
	protected.HandleFunc("/dogs/{dogId}/auto-assign", autoAssign.Handle).Methods(http.MethodPost)

	// --- Рутины ---
	// Создание/замена рутины собаки
	protected.HandleFunc("/dogs/{dogId}/routine", upsertRoutine.Handle).Methods(http.MethodPut)

	// Получение рутины собаки
	protected.HandleFunc("/dogs/{dogId}/routine", getRoutine.Handle).Methods(http.MethodGet)

	// --- Управление неделей (для владельца) ---
	// Недельный оверрайд слота (или сброс на шаблон)
	protected.HandleFunc("/weeks/{year}/{week}/slots/{slotId}/override", updateOverride.Handle).Methods(http.MethodPut)

	// Создание групповой прогулки на два смежных блока
	protected.HandleFunc("/rallies", createRally.Handle).Methods(http.MethodPost)

	// --- Биллинг ---
	// Синхронизация выполненных прогулок недели с биллингом
	protected.HandleFunc("/weeks/{year}/{week}/billing/sync", syncWeek.Handle).Methods(http.MethodPost)

	// Выполненные прогулки без записи в биллинге
	protected.HandleFunc("/weeks/{year}/{week}/billing/unsynced", getUnsynced.Handle).Methods(http.MethodGet)

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
