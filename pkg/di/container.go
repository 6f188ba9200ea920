package di

import (
	"time"

	"gorm.io/gorm"

	"tododeck/application/serviceimpl"
	"tododeck/domain/repositories"
	"tododeck/domain/services"
	natspkg "tododeck/infrastructure/nats"
	"tododeck/infrastructure/postgres"
	redispkg "tododeck/infrastructure/redis"
	"tododeck/interfaces/api/handlers"
	"tododeck/pkg/config"
	"tododeck/pkg/logger"
	"tododeck/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client   // Redis client สำหรับ stats cache (optional)
	NATSClient     *natspkg.Client    // NATS connection + JetStream (optional)
	NATSPublisher  *natspkg.Publisher // Publish activity/reminder events
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository        repositories.UserRepository
	TodoRepository        repositories.TodoRepository
	CategoryRepository    repositories.CategoryRepository
	CommentRepository     repositories.CommentRepository
	ActivityRepository    repositories.ActivityRepository
	TemplateRepository    repositories.TemplateRepository
	PreferencesRepository repositories.PreferencesRepository

	// Services
	UserService        services.UserService
	TodoService        services.TodoService
	CategoryService    services.CategoryService
	CommentService     services.CommentService
	ActivityService    services.ActivityService
	StatsService       services.StatsService
	TemplateService    services.TemplateService
	PreferencesService services.PreferencesService
	ReminderService    *serviceimpl.ReminderService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
		"file", c.Config.Log.FilePath,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Initialize Redis Client (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (stats cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	// Initialize NATS Client + JetStream (optional - events are best-effort)
	natsConfig := natspkg.ClientConfig{
		URL: c.Config.NATS.URL,
	}
	natsClient, err := natspkg.NewClient(natsConfig)
	if err != nil {
		logger.Warn("NATS client initialization failed (events disabled)", "error", err)
	} else {
		c.NATSClient = natsClient
		c.NATSPublisher = natspkg.NewPublisher(natsClient)
		logger.Info("NATS client initialized", "url", c.Config.NATS.URL)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TodoRepository = postgres.NewTodoRepository(c.DB)
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.CommentRepository = postgres.NewCommentRepository(c.DB)
	c.ActivityRepository = postgres.NewActivityRepository(c.DB)
	c.TemplateRepository = postgres.NewTemplateRepository(c.DB)
	c.PreferencesRepository = postgres.NewPreferencesRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	// Activity Service (publisher nil ได้ event เป็น best-effort)
	c.ActivityService = serviceimpl.NewActivityService(c.ActivityRepository, c.NATSPublisher)

	c.UserService = serviceimpl.NewUserService(
		c.UserRepository,
		c.CategoryRepository,
		c.PreferencesRepository,
		c.ActivityService,
		c.Config.JWT.Secret,
		c.Config.JWT.ExpiryHours,
	)

	// Stats Service (with optional Redis cache)
	if c.RedisClient != nil {
		ttl := time.Duration(c.Config.Redis.StatsTTL) * time.Second
		c.StatsService = serviceimpl.NewStatsServiceWithCache(c.TodoRepository, c.RedisClient, ttl)
		logger.Info("Stats service initialized with Redis cache", "ttl", ttl)
	} else {
		c.StatsService = serviceimpl.NewStatsService(c.TodoRepository)
		logger.Info("Stats service initialized without cache")
	}

	// Todo Service (invalidate stats cache หลัง mutation ถ้ามี cache)
	if c.RedisClient != nil {
		c.TodoService = serviceimpl.NewTodoServiceWithCache(
			c.TodoRepository,
			c.UserRepository,
			c.CategoryRepository,
			c.ActivityService,
			c.StatsService,
		)
	} else {
		c.TodoService = serviceimpl.NewTodoService(
			c.TodoRepository,
			c.UserRepository,
			c.CategoryRepository,
			c.ActivityService,
		)
	}

	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository)
	c.CommentService = serviceimpl.NewCommentService(c.CommentRepository, c.TodoRepository, c.ActivityService)
	c.TemplateService = serviceimpl.NewTemplateService(c.TemplateRepository, c.TodoService)
	c.PreferencesService = serviceimpl.NewPreferencesService(c.PreferencesRepository, c.CategoryRepository)

	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()
	logger.Info("Event scheduler started")

	if !c.Config.Reminder.Enabled {
		logger.Info("Reminder scanner disabled")
		return nil
	}

	reminderConfig := serviceimpl.ReminderConfig{
		ScanInterval: time.Duration(c.Config.Reminder.ScanInterval) * time.Second,
	}
	c.ReminderService = serviceimpl.NewReminderService(
		reminderConfig,
		c.TodoRepository,
		c.NATSPublisher,
		c.EventScheduler,
	)

	if err := c.ReminderService.RegisterScanJob(); err != nil {
		logger.Warn("Failed to register reminder scan job", "error", err)
	} else {
		logger.Info("Reminder scan job registered", "interval", reminderConfig.ScanInterval)
	}

	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Stop scheduler
	if c.EventScheduler != nil {
		if c.EventScheduler.IsRunning() {
			c.EventScheduler.Stop()
			logger.Info("Event scheduler stopped")
		}
	}

	// Close NATS connection
	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		} else {
			logger.Info("NATS connection closed")
		}
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:        c.UserService,
		TodoService:        c.TodoService,
		CategoryService:    c.CategoryService,
		CommentService:     c.CommentService,
		ActivityService:    c.ActivityService,
		StatsService:       c.StatsService,
		TemplateService:    c.TemplateService,
		PreferencesService: c.PreferencesService,
		SessionConfig:      c.Config.Session,
	}
}
