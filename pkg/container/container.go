package container

import (
	"context"
	"fmt"
	"time"

	"microblog-backend/internal/config"
	infraCache "microblog-backend/internal/infrastructure/cache"
	"microblog-backend/internal/infrastructure/database"
	"microblog-backend/pkg/cache"
	"microblog-backend/pkg/jwt"
	"microblog-backend/pkg/logger"

	groupHandler "microblog-backend/internal/domains/group/handler"
	groupRepo "microblog-backend/internal/domains/group/repository"
	groupService "microblog-backend/internal/domains/group/service"
	postHandler "microblog-backend/internal/domains/post/handler"
	postRepo "microblog-backend/internal/domains/post/repository"
	postService "microblog-backend/internal/domains/post/service"
	userHandler "microblog-backend/internal/domains/user/handler"
	userRepo "microblog-backend/internal/domains/user/repository"
	userService "microblog-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton wired once at startup.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo  userRepo.UserRepository
	GroupRepo groupRepo.GroupRepository
	PostRepo  postRepo.PostRepository

	UserService  userService.ServiceInterface
	GroupService groupService.ServiceInterface
	QueryService postService.QueryService
	PostMutation postService.MutationService

	UserHandler  *userHandler.UserHandler
	GroupHandler *groupHandler.GroupHandler
	PostHandler  *postHandler.PostHandler
}

// NewContainer builds the full graph in dependency order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	// Step 2: Database
	dbConfig, err := config.LoadDatabaseConfig()
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
	logger.Info("database connected", nil)

	// Step 3: Cache. Redis being down is not fatal; the services treat
	// the cache as best-effort.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis connection failed, continuing without cache", err)
		} else {
			logger.Info("redis connected", nil)
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// Step 4-6: Repositories, services, handlers
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.GroupRepo = groupRepo.NewPostgresGroupRepository(pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.JWTManager,
		time.Duration(c.Config.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(c.Config.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.GroupService = groupService.NewGroupService(c.GroupRepo, c.Cache)

	c.QueryService = postService.NewQueryService(
		c.PostRepo,
		c.GroupRepo,
		c.UserRepo,
		c.Config.Pagination.PageSize,
		c.Cache,
	)

	c.PostMutation = postService.NewMutationService(
		c.PostRepo,
		c.GroupRepo,
		c.UserRepo,
		c.Cache,
	)
}

func (c *Container) initHandlers() {
	cookieMaxAge := c.Config.JWT.AccessTokenExpiry * 60

	c.UserHandler = userHandler.NewUserHandler(
		c.UserService,
		c.Config.Auth.CookieName,
		cookieMaxAge,
	)

	c.GroupHandler = groupHandler.NewGroupHandler(c.GroupService)

	c.PostHandler = postHandler.NewPostHandler(
		c.QueryService,
		c.PostMutation,
		c.GroupService,
		c.Config.Auth.LoginPath,
	)
}

// Cleanup releases held resources. Called during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		logger.Info("database connections closed", nil)
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Warn("failed to close redis", err)
			}
		}
	}
}
