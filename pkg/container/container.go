package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"employee-api/internal/config"
	infraCache "employee-api/internal/infrastructure/cache"
	"employee-api/internal/infrastructure/database"
	"employee-api/pkg/cache"

	"employee-api/internal/domains/employee"
	employeeHandler "employee-api/internal/domains/employee/handler"
	employeeRepo "employee-api/internal/domains/employee/repository"
	employeeService "employee-api/internal/domains/employee/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application.
// Thứ tự initialization: Config -> Infrastructure -> Repositories -> Services -> Handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config   *config.Config
	Postgres *database.PostgresDB // nil khi STORE_DRIVER=sqlite
	SQLite   *database.SQLiteDB   // nil khi STORE_DRIVER=postgres
	Cache    cache.Cache          // nil khi Redis tắt hoặc không kết nối được

	// ========================================
	// REPOSITORY / SERVICE / HANDLER
	// ========================================
	EmployeeRepo    employee.Repository
	EmployeeService employee.Service
	EmployeeHandler *employeeHandler.EmployeeHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Msg("🔧 Initializing DI Container...")

	c := &Container{Config: cfg}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// ========================================
	// STEP 1: INITIALIZE STORE + REPOSITORY
	// ========================================
	if err := c.initStore(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 2: INITIALIZE CACHE (optional)
	// ========================================
	c.initCache(ctx)

	// ========================================
	// STEP 3: SERVICES + HANDLERS
	// ========================================
	c.EmployeeService = employeeService.NewEmployeeService(c.EmployeeRepo)
	c.EmployeeHandler = employeeHandler.NewEmployeeHandler(c.EmployeeService)
	log.Info().Msg("✅ Services and handlers initialized")

	// ========================================
	// STEP 4: SEED (bootstrap)
	// ========================================
	if cfg.Seed.OnStart {
		if _, err := c.EmployeeService.SeedIfEmpty(ctx, employee.DefaultSeed); err != nil {
			c.Cleanup()
			return nil, fmt.Errorf("failed to seed employees: %w", err)
		}
	}

	log.Info().Msg("✅ Container ready")
	return c, nil
}

func (c *Container) initStore(ctx context.Context) error {
	switch c.Config.Store.Driver {
	case config.DriverPostgres:
		log.Info().Msg("🗄️  Connecting to PostgreSQL...")

		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.Postgres = db

		if err := db.EnsureSchema(ctx); err != nil {
			return err
		}
		c.EmployeeRepo = employeeRepo.NewPostgresRepository(db.Pool)

	case config.DriverSQLite:
		db := database.NewSQLiteDB(c.Config.Store.SQLitePath)
		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to open sqlite database: %w", err)
		}
		c.SQLite = db
		c.EmployeeRepo = employeeRepo.NewSQLiteRepository(db.DB)

	default:
		return fmt.Errorf("unsupported store driver %q", c.Config.Store.Driver)
	}

	log.Info().Str("driver", c.Config.Store.Driver).Msg("✅ Store connected")
	return nil
}

// initCache: Redis failure không critical - log warning và chạy không cache
func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Redis.Enabled {
		return
	}

	log.Info().Msg("🔴 Connecting to Redis...")
	redisCache := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("⚠️  Redis connection failed (non-critical), running without cache")
			_ = rc.Close()
			return
		}
	}

	c.Cache = redisCache
	ttl := time.Duration(c.Config.Redis.TTL) * time.Second
	c.EmployeeRepo = employeeRepo.NewCachedRepository(c.EmployeeRepo, redisCache, ttl)
	log.Info().Dur("ttl", ttl).Msg("✅ Redis cache enabled")
}

// HealthCheck kiểm tra store và cache (nếu bật)
func (c *Container) HealthCheck(ctx context.Context) map[string]error {
	checks := make(map[string]error)

	switch {
	case c.Postgres != nil:
		checks["database"] = c.Postgres.HealthCheck(ctx)
	case c.SQLite != nil:
		checks["database"] = c.SQLite.HealthCheck(ctx)
	}

	if c.Cache != nil {
		checks["cache"] = c.Cache.Ping(ctx)
	}
	return checks
}

// Cleanup đóng toàn bộ connections khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up resources...")

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Redis close failed")
		}
	}
	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.SQLite != nil {
		c.SQLite.Close()
	}

	log.Info().Msg("✅ Cleanup completed")
}
