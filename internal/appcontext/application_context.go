package appcontext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/notify"
	"github.com/RoyceAzure/lab/storefront/internal/infra/payment/razorpay"
	"github.com/RoyceAzure/lab/storefront/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/fallback"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/memory"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/pricing"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type ApplicationContext struct {
	Cf     *config.Config
	Logger *zerolog.Logger

	DbDao       *db.DbDao
	RedisClient *redis.Client

	OrderStore      *fallback.OrderStore
	ReviewRepo      repository.IReviewRepo
	CartRepo        repository.ICartRepo
	AddressRepo     repository.IAddressRepo
	SessionRepo     repository.ICheckoutSessionRepo
	Gateway         *razorpay.Client
	KafkaNotifier   *notify.KafkaNotifier
	Dispatcher      *notify.Dispatcher
	Calculator      *pricing.Calculator
	PaymentLimiter  *ratelimit.KeyedLimiter
	CartService     service.ICartService
	AddressService  service.IAddressService
	PaymentService  service.IPaymentService
	OrderService    service.IOrderService
	ReviewService   service.IReviewService
	DraftService    service.IDraftService
	CheckoutService service.ICheckoutService
	Server          *api.Server
}

// NewApplicationContext 依照設定組裝所有元件.
// 資料庫, redis, kafka, smtp 都是選配, 未設定時改用記憶體或略過該通知管道.
func NewApplicationContext(ctx context.Context, cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	if err := app.Init(ctx); err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init(ctx context.Context) error {
	app.setUpLogger()

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"database", app.setUpDatabase},
		{"cache", app.setUpCache},
		{"pricing", app.setUpPricing},
		{"payment gateway", app.setUpGateway},
		{"notifications", app.setUpNotifications},
		{"rate limiter", app.setUpRateLimiter},
		{"services", app.setUpServices},
		{"server", app.setUpServer},
	}
	for _, step := range steps {
		app.Logger.Info().Str("step", step.name).Msg("start setup")
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("setup %s: %w", step.name, err)
		}
		app.Logger.Info().Str("step", step.name).Msg("finish setup")
	}
	return nil
}

func (app *ApplicationContext) setUpLogger() {
	level, err := zerolog.ParseLevel(app.Cf.LogLevel)
	if err != nil || app.Cf.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if app.Cf.IsDebug() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	logger = logger.Level(level).With().Timestamp().Str("service", "storefront").Logger()
	app.Logger = &logger
}

// setUpDatabase 連不上資料庫不是致命錯誤, 訂單改存記憶體直到重啟.
func (app *ApplicationContext) setUpDatabase(ctx context.Context) error {
	memOrders := memory.NewOrderRepo()
	if app.Cf.DatabaseURL == "" {
		app.Logger.Warn().Msg("DATABASE_URL not set, orders and reviews are kept in memory")
		app.OrderStore = fallback.NewOrderStore(nil, memOrders, app.Logger)
		app.ReviewRepo = memory.NewReviewRepo()
		return nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	pool, err := db.GetDbConn(connectCtx, app.Cf.DatabaseURL)
	if err != nil {
		app.Logger.Error().Err(err).Msg("failed to connect database, orders are kept in memory")
		app.OrderStore = fallback.NewOrderStore(nil, memOrders, app.Logger)
		app.ReviewRepo = memory.NewReviewRepo()
		return nil
	}

	if app.Cf.DbAutoMigrate {
		if err := db.RunDBMigration(app.Cf.DatabaseURL); err != nil {
			pool.Close()
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	dao, err := db.NewDbDao(pool)
	if err != nil {
		pool.Close()
		return err
	}
	app.DbDao = dao
	app.OrderStore = fallback.NewOrderStore(db.NewOrderRepo(dao), memOrders, app.Logger)
	app.ReviewRepo = db.NewReviewRepo(dao)
	return nil
}

func (app *ApplicationContext) setUpCache(ctx context.Context) error {
	if app.Cf.RedisAddr == "" {
		app.Logger.Warn().Msg("REDIS_ADDR not set, carts and checkout sessions are kept in memory")
		app.useMemoryCache()
		return nil
	}

	client, err := redis_repo.NewRedisClient(ctx, app.Cf.RedisAddr, app.Cf.RedisPassword, app.Cf.RedisDB)
	if err != nil {
		app.Logger.Error().Err(err).Str("addr", app.Cf.RedisAddr).Msg("failed to connect redis, carts are kept in memory")
		app.useMemoryCache()
		return nil
	}
	app.RedisClient = client
	app.CartRepo = redis_repo.NewCartRepo(client)
	app.AddressRepo = redis_repo.NewAddressRepo(client)
	app.SessionRepo = redis_repo.NewCheckoutSessionRepo(client, constants.CheckoutSessionTTL)
	return nil
}

func (app *ApplicationContext) useMemoryCache() {
	app.CartRepo = memory.NewCartRepo()
	app.AddressRepo = memory.NewAddressRepo()
	app.SessionRepo = memory.NewCheckoutSessionRepo(constants.CheckoutSessionTTL)
}

func (app *ApplicationContext) setUpPricing(ctx context.Context) error {
	pc, err := config.LoadPricingConfig(app.Cf.PricingConfig)
	if err != nil {
		return err
	}
	app.Calculator = pricing.NewCalculator(pc.Rules())
	return nil
}

func (app *ApplicationContext) setUpGateway(ctx context.Context) error {
	app.Gateway = razorpay.NewClient(
		app.Cf.RazorpayKeyID,
		app.Cf.RazorpayKeySecret,
		constants.GatewayTimeout,
		razorpay.WithBaseURL(app.Cf.RazorpayBaseURL),
	)
	if !app.Gateway.Configured() {
		app.Logger.Warn().Msg("razorpay keys not set, payment endpoints will answer 500")
	}
	return nil
}

func (app *ApplicationContext) setUpNotifications(ctx context.Context) error {
	var notifiers []notify.Notifier

	if brokers := app.Cf.KafkaBrokerList(); len(brokers) > 0 {
		writer := notify.NewKafkaWriter(brokers, app.Cf.KafkaNotifyTopic, app.Logger)
		app.KafkaNotifier = notify.NewKafkaNotifier(writer, app.Cf.KafkaNotifyTopic)
		notifiers = append(notifiers, app.KafkaNotifier)
	}

	if app.Cf.EmailConfigured() {
		from := app.Cf.SmtpUser
		if from == "" {
			from = fmt.Sprintf("storefront@%s", app.Cf.SmtpHost)
		}
		send := notify.SMTPSender(app.Cf.SmtpHost, app.Cf.SmtpPort, app.Cf.SmtpUser, app.Cf.SmtpPassword)
		notifiers = append(notifiers, notify.NewEmailNotifier(from, app.Cf.NotifyEmailList(), send))
	}

	notifiers = append(notifiers, notify.NewWhatsAppNotifier(app.Cf.TwilioAccountSID, app.Cf.TwilioWhatsAppFrom))

	app.Dispatcher = notify.NewDispatcher(app.Logger, notifiers,
		notify.WithWorkers(app.Cf.NotifyWorkers),
		notify.WithQueueSize(app.Cf.NotifyQueueSize),
		notify.WithSendTimeout(constants.NotifySendTimeout),
	)
	app.Dispatcher.Start()
	return nil
}

func (app *ApplicationContext) setUpRateLimiter(ctx context.Context) error {
	app.PaymentLimiter = ratelimit.NewKeyedLimiter(&ratelimit.LimiterConfig{
		Capacity: app.Cf.RateLimitCapacity,
		RatePS:   app.Cf.RateLimitRefillPerSec,
	})
	return nil
}

func (app *ApplicationContext) setUpServices(ctx context.Context) error {
	app.CartService = service.NewCartService(app.CartRepo, app.Calculator, app.Logger)
	app.AddressService = service.NewAddressService(app.AddressRepo, app.Logger)
	app.PaymentService = service.NewPaymentService(app.Gateway, app.Cf.RazorpayKeySecret, app.Logger)
	app.OrderService = service.NewOrderService(app.OrderStore, app.PaymentService, app.Dispatcher, app.Cf.OrderIDPrefix, app.Logger)
	app.ReviewService = service.NewReviewService(app.ReviewRepo, app.Logger)
	app.DraftService = service.NewDraftService(app.CartService, app.AddressService, app.Calculator, app.Logger)
	app.CheckoutService = service.NewCheckoutService(app.SessionRepo, app.DraftService, app.PaymentService, app.OrderService, app.CartService, app.Logger)
	return nil
}

func (app *ApplicationContext) setUpServer(ctx context.Context) error {
	var database, cache handler.Pinger
	if app.DbDao != nil {
		database = app.DbDao
	}
	if app.RedisClient != nil {
		cache = redisPinger{client: app.RedisClient}
	}

	app.Server = api.NewServer(
		handler.NewOrderHandler(app.OrderService),
		handler.NewPaymentHandler(app.PaymentService),
		handler.NewReviewHandler(app.ReviewService),
		handler.NewCartHandler(app.CartService),
		handler.NewAddressHandler(app.AddressService),
		handler.NewCheckoutHandler(app.DraftService, app.CheckoutService),
		handler.NewHealthHandler(app.OrderStore, app.Dispatcher, database, cache, app.Gateway.Configured()),
		app.PaymentLimiter,
	)
	return nil
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Shutdown 先排空通知佇列, 再關閉外部連線. 個別錯誤不中斷流程, 最後一併回傳.
func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	app.Logger.Info().Msg("start application shutdown")
	var errs []error

	if app.Dispatcher != nil {
		if err := app.Dispatcher.Shutdown(ctx); err != nil {
			app.Logger.Error().Err(err).Msg("notification dispatcher shutdown error")
			errs = append(errs, err)
		}
	}
	if app.KafkaNotifier != nil {
		if err := app.KafkaNotifier.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka writer: %w", err))
		}
	}
	if app.PaymentLimiter != nil {
		app.PaymentLimiter.Stop()
	}
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if app.DbDao != nil {
		app.DbDao.Close()
	}

	app.Logger.Info().Msg("application shutdown complete")
	return errors.Join(errs...)
}
