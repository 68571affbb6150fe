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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
	adminActionHandler "github.com/m04kA/DriveTail-Dashboard/internal/api/handlers/admin_action"
	createSlotBatchHandler "github.com/m04kA/DriveTail-Dashboard/internal/api/handlers/create_slot_batch"
	getSessionHandler "github.com/m04kA/DriveTail-Dashboard/internal/api/handlers/get_session"
	listActivityHandler "github.com/m04kA/DriveTail-Dashboard/internal/api/handlers/list_activity"
	listTicketsHandler "github.com/m04kA/DriveTail-Dashboard/internal/api/handlers/list_tickets"
	listUsersHandler "github.com/m04kA/DriveTail-Dashboard/internal/api/handlers/list_users"
	proxyResourceHandler "github.com/m04kA/DriveTail-Dashboard/internal/api/handlers/proxy_resource"
	signInHandler "github.com/m04kA/DriveTail-Dashboard/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/DriveTail-Dashboard/internal/api/handlers/sign_out"
	"github.com/m04kA/DriveTail-Dashboard/internal/api/middleware"
	"github.com/m04kA/DriveTail-Dashboard/internal/config"
	sessionCache "github.com/m04kA/DriveTail-Dashboard/internal/infra/cache/session"
	activityRepo "github.com/m04kA/DriveTail-Dashboard/internal/infra/storage/activity"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
	activityService "github.com/m04kA/DriveTail-Dashboard/internal/service/activity"
	sessionService "github.com/m04kA/DriveTail-Dashboard/internal/service/session"
	createSlotBatchUC "github.com/m04kA/DriveTail-Dashboard/internal/usecase/create_slot_batch"
	"github.com/m04kA/DriveTail-Dashboard/pkg/logger"
	"github.com/m04kA/DriveTail-Dashboard/pkg/metrics"
)

const pruneInterval = time.Hour

func main() {
	// Загружаем конфигурацию
	cfgPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
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

	log.Info("Starting DriveTail-Dashboard...")
	log.Info("Configuration loaded from %s", cfgPath)

	// Метрики (nil, если выключены: методы коллектора nil-safe)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент бэкенда DriveTail
	backendClient := backend.NewClient(
		cfg.BackendURL(),
		time.Duration(cfg.Backend.Timeout)*time.Second,
		cfg.Backend.Origin,
		metricsCollector,
		log,
	)
	log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.BackendURL(), cfg.Backend.Timeout)

	// Кэш сессий: redis или память процесса
	var store sessionService.Store
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		redisStore := sessionCache.NewRedisStore(rdb)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisStore.Ping(pingCtx); err != nil {
			cancel()
			log.Fatal("Failed to ping redis: %v", err)
		}
		cancel()
		store = redisStore
		log.Info("Session cache: redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	} else {
		store = sessionCache.NewMemoryStore()
		log.Info("Session cache: in-memory")
	}

	sessions := sessionService.NewService(
		store,
		backendClient,
		time.Duration(cfg.Redis.SessionTTLHours)*time.Hour,
		cfg.Auth.AdminRole,
		log,
	)

	// Журнал активности: PostgreSQL или кольцевой буфер в памяти
	var activityRepository activityService.Repository
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		repo := activityRepo.NewRepository(db)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to prepare activity schema: %v", err)
		}
		activityRepository = repo
	} else {
		activityRepository = activityRepo.NewMemoryRepository(cfg.Activity.MemoryCapacity)
		log.Info("Activity journal: in-memory (capacity=%d)", cfg.Activity.MemoryCapacity)
	}

	activitySvc := activityService.NewService(activityRepository, metricsCollector, log)

	// Use cases
	createSlotBatchUseCase := createSlotBatchUC.NewUseCase(backendClient, activitySvc, metricsCollector, log)

	// Handlers
	cookieOpts := handlers.CookieOptions{
		Secure:   cfg.Cookies.Secure,
		SameSite: cfg.Cookies.SameSiteMode(),
		MaxAge:   cfg.Cookies.MaxAge(),
	}

	signIn := signInHandler.NewHandler(backendClient, sessions, cookieOpts, log)
	signOut := signOutHandler.NewHandler(backendClient, sessions, cookieOpts, log)
	getSession := getSessionHandler.NewHandler(sessions, log)
	listUsers := listUsersHandler.NewHandler(backendClient, log)
	adminAction := adminActionHandler.NewHandler(backendClient, activitySvc, log)
	createSlotBatch := createSlotBatchHandler.NewHandler(createSlotBatchUseCase, sessions, log)
	listTickets := listTicketsHandler.NewHandler(backendClient, log)
	listActivity := listActivityHandler.NewHandler(activitySvc, log)
	proxyResource := proxyResourceHandler.NewHandler(backendClient, activitySvc, sessions, log)

	signInLimiter := middleware.NewRateLimiter(cfg.RateLimit.SignInPerMinute, cfg.RateLimit.SignInBurst, cfg.RateLimit.TrustProxyHeaders, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без cookie)
	// ============================================================

	signInRoute := signInLimiter.Handler(http.HandlerFunc(signIn.Handle))
	api.Handle("/auth/sign-in", signInRoute).Methods(http.MethodPost)
	api.Handle("/auth/sign-in/email", signInRoute).Methods(http.MethodPost)
	api.HandleFunc("/auth/sign-out", signOut.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/session", getSession.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют cookie auth_token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireToken)

	// --- Пользователи ---
	protected.HandleFunc("/auth/admin/list-users", listUsers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/auth/admin/{action}", adminAction.Handle).Methods(http.MethodPost)

	// --- Слоты и тикеты ---
	protected.HandleFunc("/slot.batch", createSlotBatch.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/ticket", listTickets.Handle).Methods(http.MethodGet)

	// --- Журнал активности ---
	protected.HandleFunc("/activity", listActivity.Handle).Methods(http.MethodGet)

	// --- Остальные ресурсы бэкенда как есть ---
	protected.HandleFunc("/{resource}", proxyResource.Handle).Methods(http.MethodGet, http.MethodPost)
	protected.HandleFunc("/{resource}/{id}", proxyResource.Handle).
		Methods(http.MethodGet, http.MethodPatch, http.MethodPut, http.MethodDelete)

	// ============================================================
	// DASHBOARD PAGES (гейт по cookie + статика)
	// ============================================================

	gate := middleware.Gate(middleware.GateConfig{
		AdminRole:     cfg.Auth.AdminRole,
		LoginPath:     cfg.Auth.LoginPath,
		DashboardPath: cfg.Auth.DashboardPath,
	})
	r.PathPrefix("/").Handler(gate(http.FileServer(http.Dir(cfg.Server.StaticDir))))
	log.Info("Serving dashboard from %s", cfg.Server.StaticDir)

	// Очистка журнала активности
	pruneCtx, stopPrune := context.WithCancel(context.Background())
	defer stopPrune()
	if retention := cfg.Activity.Retention(); retention > 0 {
		go pruneActivity(pruneCtx, activitySvc, retention, log)
	}

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
	stopPrune()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дописываем очередь журнала до закрытия БД
	if err := activitySvc.Close(shutdownCtx); err != nil {
		log.Error("Activity journal not drained: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func pruneActivity(ctx context.Context, svc *activityService.Service, retention time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		if removed, err := svc.Prune(ctx, retention); err == nil && removed > 0 {
			log.Info("Activity journal pruned: %d entries older than %s", removed, retention)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
