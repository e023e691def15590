package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/parts-inventory/internal/config"
	envconfig "github.com/you-humble/parts-inventory/internal/config/env"
	"github.com/you-humble/parts-inventory/internal/converter"
	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/inventory"
	"github.com/you-humble/parts-inventory/internal/ledger"
	movproducer "github.com/you-humble/parts-inventory/internal/service/producer/movement"
	service "github.com/you-humble/parts-inventory/internal/service/record"
	"github.com/you-humble/parts-inventory/internal/store"
	"github.com/you-humble/parts-inventory/internal/store/memory"
	mongostore "github.com/you-humble/parts-inventory/internal/store/mongo"
	thttp "github.com/you-humble/parts-inventory/internal/transport/http/record/v1"
	"github.com/you-humble/parts-inventory/platform/closer"
	"github.com/you-humble/parts-inventory/platform/kafka"
	"github.com/you-humble/parts-inventory/platform/kafka/producer"
	"github.com/you-humble/parts-inventory/platform/logger"
)

type RecordHandler interface {
	Routes(r chi.Router)
}

type MovementObserver interface {
	Observe(ctx context.Context, ev entity.Event)
}

type di struct {
	mongo *mongo.Client
	store store.Store

	ledger     *ledger.Ledger
	controller *entity.Controller

	syncProducer          sarama.SyncProducer
	stockMovementProducer kafka.Producer
	movementObserver      MovementObserver

	service thttp.RecordService
	handler RecordHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) Store(ctx context.Context) store.Store {
	if d.store == nil {
		switch config.C().Store.Driver() {
		case envconfig.DriverMemory:
			d.store = memory.NewStore()
		default:
			db := d.MongoDB(ctx).Database(config.C().Mongo.DatabaseName())
			if err := mongostore.EnsureIndexes(ctx, db, inventory.IndexedFields()); err != nil {
				panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
			}
			d.store = mongostore.NewStore(db)
		}
	}

	return d.store
}

func (d *di) Ledger(ctx context.Context) *ledger.Ledger {
	if d.ledger == nil {
		d.ledger = ledger.New(d.Store(ctx))
	}

	return d.ledger
}

func (d *di) Controller(ctx context.Context) *entity.Controller {
	if d.controller == nil {
		ctrl := entity.NewController(d.Store(ctx), entity.NewRegistry())
		inventory.Register(ctrl, d.Ledger(ctx))

		if config.C().Kafka.Enabled() {
			ctrl.Observe(d.MovementObserver(ctx).Observe)
		}

		d.controller = ctrl
	}

	return d.controller
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.StockMovementProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) StockMovementProducer(ctx context.Context) kafka.Producer {
	if d.stockMovementProducer == nil {
		d.stockMovementProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.StockMovementTopic(),
			logger.L(),
		)
	}

	return d.stockMovementProducer
}

func (d *di) MovementObserver(ctx context.Context) MovementObserver {
	if d.movementObserver == nil {
		d.movementObserver = movproducer.NewMovementProducer(
			d.StockMovementProducer(ctx),
			converter.NewKafkaConverter(),
			d.Ledger(ctx),
		)
	}

	return d.movementObserver
}

func (d *di) RecordService(ctx context.Context) thttp.RecordService {
	if d.service == nil {
		d.service = service.NewRecordService(
			d.Controller(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.service
}

func (d *di) RecordHandler(ctx context.Context) RecordHandler {
	if d.handler == nil {
		d.handler = thttp.NewRecordHandler(
			d.RecordService(ctx),
			d.Controller(ctx).Kinds(),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
