package container

import (
	"context"
	"fmt"
	"time"

	"employees-backend/internal/config"
	"employees-backend/internal/domains/employee"
	employeeHandler "employees-backend/internal/domains/employee/handler"
	employeeRepo "employees-backend/internal/domains/employee/repository"
	employeeService "employees-backend/internal/domains/employee/service"
	infraCache "employees-backend/internal/infrastructure/cache"
	"employees-backend/internal/infrastructure/database"
	"employees-backend/pkg/cache"

	"github.com/rs/zerolog/log"
)

// Container holds ALL application dependencies.
// This struct is the root of the dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Shared across all domains. Lifecycle: singleton.

	Config *config.Config       // Application config
	DB     *database.PostgresDB // Database connection pool
	Cache  cache.Cache          // Redis cache (interface)

	// ========================================
	// EMPLOYEE DOMAIN
	// ========================================
	// Repository -> Service -> Handler, all stateless singletons.

	SkillVocabulary employee.SkillVocabulary
	EmployeeRepo    employee.Repository
	EmployeeService employee.Service
	EmployeeHandler *employeeHandler.EmployeeHandler
}

// NewContainer builds and initializes the whole dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, Cache) - depends on Config
// 3. Repository - depends on Infrastructure
// 4. Service - depends on Repository
// 5. Handler - depends on Service
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Info().Msg("database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	// Redis failure is non-critical: the repository degrades to the database.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis connection failed (non-critical)")
		} else {
			log.Info().Msg("redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: EMPLOYEE DOMAIN WIRING
	// ========================================
	c.SkillVocabulary = employee.DefaultSkillVocabulary()
	c.EmployeeRepo = employeeRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.EmployeeService = employeeService.NewEmployeeService(c.EmployeeRepo)
	c.EmployeeHandler = employeeHandler.NewEmployeeHandler(c.EmployeeService, c.SkillVocabulary)

	log.Info().Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}
