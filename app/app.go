package app

import (
	"context"
	"fmt"

	"journeo/chat"
	"journeo/config"
	"journeo/llm/agent"
	"journeo/llm/providers"
	"journeo/llm/tools"
	"journeo/metrics"
	"journeo/pubsub"

	"github.com/cloudwego/eino/compose"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds everything built from one Config: the agent team behind a
// runtime, the chat service on top of it, and the shared plumbing.
type App struct {
	Config  *config.Config
	Log     *zap.Logger
	Metrics *metrics.Metrics
	Events  *pubsub.Broker[agent.Event]
	Runtime *agent.Runtime
	Store   chat.ConversationStore
	Chat    *chat.Service

	redis        *redis.Client
	closeTracing func(context.Context)
}

// New wires the application. Extra runtime options, such as an event hook,
// are applied after the defaults.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger, opts ...agent.Option) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	closeTracing, err := providers.SetupTracing(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:       cfg,
		Log:          log,
		Metrics:      metrics.New(),
		Events:       pubsub.NewBroker[agent.Event](),
		closeTracing: closeTracing,
	}

	if err := a.build(ctx, opts); err != nil {
		a.Close(ctx)
		return nil, err
	}
	return a, nil
}

func (a *App) build(ctx context.Context, opts []agent.Option) error {
	cfg := a.Config

	factory, err := providers.NewFactory(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create model factory: %w", err)
	}
	models, err := newModels(ctx, factory, cfg)
	if err != nil {
		return err
	}

	toolset, err := tools.NewToolset(a.Log)
	if err != nil {
		return fmt.Errorf("create tools: %w", err)
	}

	team, err := agent.NewTeam(ctx, &agent.TeamConfig{
		Models:        models,
		Tools:         toolset,
		Middlewares:   []compose.ToolMiddleware{tools.Middleware(a.Log, a.Metrics)},
		MaxIterations: cfg.MaxIterations,
	})
	if err != nil {
		return fmt.Errorf("create agents: %w", err)
	}

	runtimeOpts := append([]agent.Option{
		agent.WithPublisher(a.Events),
		agent.WithMetrics(a.Metrics),
	}, opts...)
	a.Runtime = agent.NewRuntime(ctx, team.Orchestrator, a.Log, runtimeOpts...)

	if err := a.openStore(ctx); err != nil {
		return err
	}
	a.Chat = chat.NewService(a.Runtime, a.Store, a.Log, a.Metrics)
	return nil
}

func newModels(ctx context.Context, factory *providers.Factory, cfg *config.Config) (agent.Models, error) {
	var models agent.Models
	var err error
	if models.Flight, err = factory.ChatModel(ctx, cfg.FlightModel); err != nil {
		return models, fmt.Errorf("create %s model: %w", agent.FlightAgentName, err)
	}
	if models.Hotel, err = factory.ChatModel(ctx, cfg.HotelModel); err != nil {
		return models, fmt.Errorf("create %s model: %w", agent.HotelAgentName, err)
	}
	if models.Payment, err = factory.ChatModel(ctx, cfg.PaymentModel); err != nil {
		return models, fmt.Errorf("create %s model: %w", agent.PaymentAgentName, err)
	}
	if models.Orchestrator, err = factory.ChatModel(ctx, cfg.OrchestratorModel); err != nil {
		return models, fmt.Errorf("create %s model: %w", agent.TravelPlannerName, err)
	}
	return models, nil
}

// openStore picks Redis when REDIS_ADDR is set and memory otherwise.
func (a *App) openStore(ctx context.Context) error {
	cfg := a.Config
	if cfg.RedisAddr == "" {
		a.Store = chat.NewMemoryStore(cfg.HistoryLimit)
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	a.redis = client
	a.Store = chat.NewRedisStore(client, cfg.HistoryLimit)
	a.Log.Info("chat transcripts stored in redis", zap.String("addr", cfg.RedisAddr))
	return nil
}

// Close releases the broker, the Redis client and the tracer.
func (a *App) Close(ctx context.Context) {
	a.Events.Shutdown()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.Log.Warn("close redis", zap.Error(err))
		}
	}
	if a.closeTracing != nil {
		a.closeTracing(ctx)
	}
	_ = a.Log.Sync()
}
