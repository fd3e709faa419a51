package provider

import (
	"github.com/scentora-shop/internal/cache"
	"github.com/scentora-shop/internal/config"
	"github.com/scentora-shop/internal/logger"
	"github.com/scentora-shop/internal/models"
	"github.com/scentora-shop/internal/queue"
	"github.com/scentora-shop/internal/repository"
	"github.com/scentora-shop/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo       repository.ProductRepository
	CategoryRepo      repository.CategoryRepository
	CartRepo          repository.CartRepository
	GiftTierRepo      repository.GiftTierRepository
	SettingRepo       repository.SettingRepository
	TrackingEventRepo repository.TrackingEventRepository
	QuizRepo          repository.QuizRepository

	// Services
	SettingService  *service.SettingService
	TrackingService *service.TrackingService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	GiftTierService *service.GiftTierService
	QuizService     *service.QuizService
}

// NewContainer builds the container from the loaded configuration.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.GiftTierRepo = repository.NewGiftTierRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.TrackingEventRepo = repository.NewTrackingEventRepository(db)
	c.QuizRepo = repository.NewQuizRepository(db)
}

func (c *Container) initServices() {
	c.SettingService = service.NewSettingService(c.SettingRepo, c.Config.Cart, c.Config.WhatsApp)
	c.TrackingService = service.NewTrackingService(c.QueueClient)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.GiftTierRepo, c.SettingService, c.TrackingService)
	c.CheckoutService = service.NewCheckoutService(c.CartService, c.SettingService)
	c.GiftTierService = service.NewGiftTierService(c.GiftTierRepo, c.ProductRepo)
	c.QuizService = service.NewQuizService(c.QuizRepo, c.ProductRepo)
}
