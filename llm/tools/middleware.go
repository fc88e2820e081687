package tools

import (
	"context"
	"fmt"
	"strings"

	"journeo/metrics"

	"github.com/cloudwego/eino/compose"
	"go.uber.org/zap"
)

// Middleware logs and counts every tool call made inside an agent run.
// A failing tool does not abort the run: its error is handed back to the model
// as the tool result so the model can react to it.
func Middleware(log *zap.Logger, m *metrics.Metrics) compose.ToolMiddleware {
	return compose.ToolMiddleware{
		Invokable: func(next compose.InvokableToolEndpoint) compose.InvokableToolEndpoint {
			return func(ctx context.Context, in *compose.ToolInput) (*compose.ToolOutput, error) {
				log.Debug("tool call", zap.String("tool", in.Name), zap.String("arguments", in.Arguments))

				output, err := next(ctx, in)
				if err != nil {
					errStr := err.Error()
					// interrupts are control flow, not failures
					if strings.Contains(errStr, "interrupt signal") {
						return nil, err
					}

					m.ToolCall(in.Name, "error")
					log.Warn("tool call failed", zap.String("tool", in.Name), zap.Error(err))

					if idx := strings.Index(errStr, "err="); idx != -1 {
						errStr = strings.TrimSpace(errStr[idx+4:])
					}
					return &compose.ToolOutput{Result: fmt.Sprintf("Error: %s", errStr)}, nil
				}

				m.ToolCall(in.Name, "success")
				return output, nil
			}
		},
	}
}
