package providers

import (
	"context"
	"fmt"

	"journeo/config"

	clc "github.com/cloudwego/eino-ext/callbacks/cozeloop"
	"github.com/cloudwego/eino/callbacks"
	"github.com/coze-dev/cozeloop-go"
	"go.uber.org/zap"
)

// SetupTracing installs the cozeloop callback handler when tracing is enabled
// and configured. The returned function flushes and closes the client; it is
// always safe to call.
func SetupTracing(ctx context.Context, cfg *config.Config, log *zap.Logger) (func(context.Context), error) {
	if !cfg.TracingConfigured() {
		log.Debug("tracing disabled")
		return func(context.Context) {}, nil
	}

	client, err := cozeloop.NewClient(
		cozeloop.WithAPIToken(cfg.CozeloopAPIToken),
		cozeloop.WithWorkspaceID(cfg.CozeloopWorkspaceID),
	)
	if err != nil {
		return nil, fmt.Errorf("create cozeloop client: %w", err)
	}

	callbacks.AppendGlobalHandlers(clc.NewLoopHandler(client))
	log.Info("tracing enabled", zap.String("workspace", cfg.CozeloopWorkspaceID))

	return func(ctx context.Context) {
		client.Close(ctx)
	}, nil
}
