package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/prasadhande/pizza-factory/configs"
	"github.com/prasadhande/pizza-factory/internal/adapter/cache"
	httpadapter "github.com/prasadhande/pizza-factory/internal/adapter/http"
	"github.com/prasadhande/pizza-factory/internal/adapter/http/middleware"
	"github.com/prasadhande/pizza-factory/internal/adapter/kafka"
	"github.com/prasadhande/pizza-factory/internal/adapter/memstore"
	"github.com/prasadhande/pizza-factory/internal/adapter/queue"
	"github.com/prasadhande/pizza-factory/internal/adapter/repo"
	"github.com/prasadhande/pizza-factory/internal/entity"
	"github.com/prasadhande/pizza-factory/internal/logging"
	"github.com/prasadhande/pizza-factory/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

const devSeedQuantity = 100

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init(cfg.App.Name, cfg.App.LogFile)
	logger.Info("pizzeria-api: starting up")

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	// catalog: MySQL when configured, seeded in-memory menu otherwise
	var catalog usecase.Catalog
	if cfg.MySQL.DSN != "" {
		db, err := sql.Open("mysql", cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, err
		}
		db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
		db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err != nil {
			return nil, nil, err
		}
		cleanups = append(cleanups, func() { _ = db.Close() })
		catalog = repo.NewMySQLCatalogRepo(db, cfg.Menu.ExtraCheesePrice)
	} else {
		logger.Info("mysql.dsn empty, using in-memory catalog")
		catalog = memstore.NewCatalog()
	}

	// inventory: Redis when configured, in-memory ledger otherwise
	var inventory usecase.Inventory
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			cleanup()
			return nil, nil, err
		}
		cleanups = append(cleanups, func() { _ = rdb.Close() })
		inventory = cache.NewRedisInventory(rdb)
	} else {
		logger.Info("redis.addr empty, using in-memory inventory")
		mem := memstore.NewInventory()
		seedInventory(catalog, mem)
		inventory = mem
	}

	// rabbitmq: placed-order events + kitchen ticket consumer
	var orderQueue usecase.OrderQueue
	if cfg.Rabbit.URL != "" {
		conn, err := amqp091.Dial(cfg.Rabbit.URL)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		ch, err := conn.Channel()
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		cleanups = append(cleanups, func() { _ = conn.Close() })

		producer, err := queue.NewRabbitProducer(ch)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		orderQueue = producer

		if err := setupKitchenQueue(ch); err != nil {
			cleanup()
			return nil, nil, err
		}
	} else {
		logger.Info("rabbitmq.url empty, order events disabled")
	}

	// kafka: restock supply feed
	if len(cfg.Kafka.Brokers) > 0 {
		if err := setupRestockListener(cfg, inventory); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	// handlers + router + middleware
	placeUC := usecase.NewPlaceOrder(usecase.NewBuilder(catalog), inventory, orderQueue)
	h := httpadapter.NewOrderHandler(placeUC, catalog, inventory)
	th := httpadapter.NewTokenHandler(cfg)
	auth := middleware.NewAuthz(cfg)
	router := httpadapter.NewRouter(h, th, auth)

	return &App{Router: router}, cleanup, nil
}

// seedInventory stocks the in-memory ledger with every catalog
// ingredient so a dev instance can take orders immediately.
func seedInventory(catalog usecase.Catalog, inv *memstore.Inventory) {
	ctx := context.Background()
	menu, err := catalog.Menu(ctx)
	if err != nil {
		logging.Base().Warn("dev inventory seed failed", "err", err)
		return
	}
	for _, p := range menu.Pizzas {
		_ = inv.Restock(ctx, p.Name, devSeedQuantity)
	}
	for _, c := range menu.Crusts {
		_ = inv.Restock(ctx, c.Name, devSeedQuantity)
	}
	for _, t := range menu.Toppings {
		_ = inv.Restock(ctx, t.Name, devSeedQuantity)
	}
	for _, s := range menu.Sides {
		_ = inv.Restock(ctx, s.Name, devSeedQuantity)
	}
	_ = inv.Restock(ctx, entity.ExtraCheeseIngredient, devSeedQuantity)
}

func setupKitchenQueue(ch *amqp091.Channel) error {
	h := queue.NewKitchenTicketHandler()

	router := queue.NewRouter(ch, queue.WithPrefetch(50))
	router.Register("order.placed.q", queue.JSONHandler[usecase.PlacedMsg]{HandleFunc: h.HandleTicket})

	return router.Start()
}

func setupRestockListener(cfg configs.Config, inv usecase.Inventory) error {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		return err
	}

	h := kafka.NewRestockHandler(inv)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.RestockTopic}, h.Handle)
	consumer.Logger = logging.New("kafka-restock")

	go func() {
		if err := consumer.Start(context.Background()); err != nil {
			logging.Base().Error("restock consumer stopped", "err", err)
		}
	}()
	return nil
}
