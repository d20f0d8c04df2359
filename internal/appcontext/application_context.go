package appcontext

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/roselab/warehouse/internal/config"
	"github.com/roselab/warehouse/internal/infra/producer"
	"github.com/roselab/warehouse/internal/infra/repository/db"
	"github.com/roselab/warehouse/internal/infra/repository/redis_decorator"
	"github.com/roselab/warehouse/internal/infra/repository/redis_repo"
	"github.com/roselab/warehouse/internal/service"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf             *config.Config
	DbConn         *gorm.DB
	DbDao          *db.DbDao
	RedisClient    *redis.Client
	StockCache     redis_repo.IProductRedisRepository
	OrderProducer  producer.IOrderEventProducer
	ProductService service.IProductService
	OrderService   service.IOrderService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpDbConn()
	if err != nil {
		return err
	}
	err = app.setUpDbDao()
	if err != nil {
		return err
	}
	app.setUpRedis()
	app.setUpProducer()
	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpDbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	// schema不存在時自動建立
	if err := app.DbDao.InitMigrate(); err != nil {
		return err
	}
	log.Printf("Finish setup database DAO")
	return nil
}

// redis未設定時略過, 商品庫存cache為選配
func (app *ApplicationContext) setUpRedis() {
	if app.Cf.RedisAddr == "" {
		log.Printf("REDIS_ADDR not set, stock cache disabled")
		return
	}
	log.Printf("Start setup redis stock cache")
	app.RedisClient = redis.NewClient(&redis.Options{
		Addr: app.Cf.RedisAddr,
	})
	app.StockCache = redis_repo.NewProductRedisRepo(app.RedisClient)
	log.Printf("Finish setup redis stock cache")
}

// kafka未設定時略過, 訂單事件為選配
func (app *ApplicationContext) setUpProducer() {
	if app.Cf.KafkaBrokers == "" {
		log.Printf("KAFKA_BROKERS not set, order events disabled")
		return
	}
	log.Printf("Start setup order event producer")
	brokers := strings.Split(app.Cf.KafkaBrokers, ",")
	app.OrderProducer = producer.NewOrderEventProducer(brokers, app.Cf.KafkaOrderTopic)
	log.Printf("Finish setup order event producer")
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")

	productRepo := db.NewProductRepo(app.DbDao)
	orderRepo := db.NewOrderRepo(app.DbDao)

	var productRepoForService db.IProductRepository = productRepo
	if app.StockCache != nil {
		productRepoForService = redis_decorator.NewCacheAsideProductRepo(productRepo, app.StockCache)
	}

	app.ProductService = service.NewProductService(productRepoForService)
	app.OrderService = service.NewOrderService(app.DbDao, orderRepo, productRepo, app.StockCache, app.OrderProducer)
	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.OrderProducer != nil {
			log.Printf("Closing order event producer...")
			if err := app.OrderProducer.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("producer shutdown error: %v", err)
			}
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis shutdown error: %v", err)
			}
		}

		// 關閉 DB
		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
