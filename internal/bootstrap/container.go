package bootstrap

import (
	"context"
	"time"

	"notegraph-be/internal/config"
	"notegraph-be/internal/controller"
	"notegraph-be/internal/pkg/logger"
	"notegraph-be/internal/repository/contract"
	"notegraph-be/internal/repository/memory"
	"notegraph-be/internal/repository/redisstore"
	"notegraph-be/internal/repository/unitofwork"
	"notegraph-be/internal/service"
	"notegraph-be/pkg/database"

	pktNats "notegraph-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController             controller.INoteController
	SuggestionController       controller.ISuggestionController
	RelationshipTypeController controller.IRelationshipTypeController
	HealthController           controller.IHealthController

	// Background and startup services (run from main.go)
	ConsumerService         service.IConsumerService
	RelationshipTypeService service.IRelationshipTypeService

	Logger logger.ILogger

	pubSub  *gochannel.GoChannel
	natsPub *pktNats.Publisher
	rdb     *redis.Client
}

func NewContainer(db *gorm.DB, cfg *config.Config, log logger.ILogger) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Event bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// 3. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, cfg.Graph.EventStreamName)
	if err != nil {
		log.Warn("BOOTSTRAP", "Failed to connect to NATS, lifecycle events stay in-process", map[string]interface{}{
			"url":   cfg.App.NatsURL,
			"error": err.Error(),
		})
	}

	ttl := time.Duration(cfg.Graph.SuggestionTTLMinutes) * time.Minute
	suggestionRepo, rdb := newSuggestionRepository(cfg.App.RedisURL, ttl, log)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Graph.LifecycleTopic, pubSub)

	var relay service.EventPublisher
	if natsPub != nil {
		relay = natsPub
	}
	consumerService := service.NewConsumerService(pubSub, cfg.Graph.LifecycleTopic, relay, log)

	linkGraphService := service.NewLinkGraphService(uowFactory, service.LinkValidationMode(cfg.Graph.LinkValidationMode))
	suggestionService := service.NewSuggestionService(uowFactory, suggestionRepo)
	relationshipTypeService := service.NewRelationshipTypeService(uowFactory, log)
	noteService := service.NewNoteService(
		uowFactory,
		linkGraphService,
		suggestionService,
		publisherService,
		log,
	)

	// 5. Controllers
	return &Container{
		NoteController:             controller.NewNoteController(noteService),
		SuggestionController:       controller.NewSuggestionController(suggestionService),
		RelationshipTypeController: controller.NewRelationshipTypeController(relationshipTypeService),
		HealthController: controller.NewHealthController(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}),

		ConsumerService:         consumerService,
		RelationshipTypeService: relationshipTypeService,

		Logger: log,

		pubSub:  pubSub,
		natsPub: natsPub,
		rdb:     rdb,
	}
}

// newSuggestionRepository prefers Redis and falls back to an in-process cache
// when Redis is unreachable at startup.
func newSuggestionRepository(redisURL string, ttl time.Duration, log logger.ILogger) (contract.SuggestionRepository, *redis.Client) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn("BOOTSTRAP", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{
			"error": err.Error(),
		})
		opt = &redis.Options{Addr: redisURL}
	}

	rdb := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("BOOTSTRAP", "Failed to connect to Redis, using in-memory suggestion store", map[string]interface{}{
			"error": err.Error(),
		})
		_ = rdb.Close()
		return memory.NewSuggestionRepository(ttl), nil
	}

	log.Info("BOOTSTRAP", "Using Redis suggestion store", map[string]interface{}{"addr": opt.Addr})
	return redisstore.NewSuggestionRepository(rdb, ttl), rdb
}

// Close releases the event bus and external connections.
func (c *Container) Close() {
	if err := c.pubSub.Close(); err != nil {
		c.Logger.Warn("BOOTSTRAP", "Failed to close event bus", map[string]interface{}{"error": err.Error()})
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
}
