package providers

import (
	"context"
	"fmt"

	"journeo/config"

	geminiModel "github.com/cloudwego/eino-ext/components/model/gemini"
	openaiModel "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"
)

// Factory creates chat models for the configured provider. One factory is
// built at start-up and shared by every agent.
type Factory struct {
	cfg    *config.Config
	client *genai.Client
}

// NewFactory prepares a factory for cfg.Provider. For the native Gemini
// provider the genai client is created here and reused by every model.
func NewFactory(ctx context.Context, cfg *config.Config) (*Factory, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	f := &Factory{cfg: cfg}
	if cfg.Provider == config.ProviderGemini {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create genai client: %w", err)
		}
		f.client = client
	}
	return f, nil
}

// ChatModel returns a tool-calling chat model for modelName.
func (f *Factory) ChatModel(ctx context.Context, modelName string) (model.ToolCallingChatModel, error) {
	if modelName == "" {
		return nil, fmt.Errorf("model name is required")
	}

	switch f.cfg.Provider {
	case config.ProviderGemini:
		return geminiModel.NewChatModel(ctx, &geminiModel.Config{
			Client: f.client,
			Model:  modelName,
		})
	case config.ProviderOpenAI:
		baseURL := f.cfg.BaseURL
		if baseURL == "" {
			baseURL = config.GeminiOpenAIBaseURL
		}
		return openaiModel.NewChatModel(ctx, &openaiModel.ChatModelConfig{
			APIKey:  f.cfg.GeminiAPIKey,
			BaseURL: baseURL,
			Model:   modelName,
		})
	default:
		return nil, fmt.Errorf("unknown provider %q", f.cfg.Provider)
	}
}
