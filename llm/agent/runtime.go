package agent

import (
	"context"

	"journeo/llm/booking"
	"journeo/metrics"
	"journeo/pubsub"

	"github.com/cloudwego/eino/adk"
	"go.uber.org/zap"
)

// Reply is the outcome of a run: the text of the last message the agents
// produced and, when that text holds one, the parsed booking confirmation.
type Reply struct {
	Text         string
	Confirmation *booking.BookingConfirmation
}

// NewReply wraps text, parsing a booking confirmation out of it if possible.
func NewReply(text string) *Reply {
	r := &Reply{Text: text}
	if conf, err := booking.ParseBookingConfirmation([]byte(booking.ExtractJSON(text))); err == nil {
		r.Confirmation = conf
	}
	return r
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithPublisher publishes run progress to p.
func WithPublisher(p pubsub.Publisher[Event]) Option {
	return func(r *Runtime) { r.events = p }
}

// WithMetrics records runs and events on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Runtime) { r.metrics = m }
}

// WithEventHook calls fn with every raw ADK event before it is classified.
// Streaming output handed to fn is a copy, so fn may read it.
func WithEventHook(fn func(*adk.AgentEvent)) Option {
	return func(r *Runtime) { r.onEvent = fn }
}

// Runtime runs the travel team for one prompt at a time.
type Runtime struct {
	runner  *adk.Runner
	log     *zap.Logger
	events  pubsub.Publisher[Event]
	metrics *metrics.Metrics
	onEvent func(*adk.AgentEvent)
}

// NewRuntime creates a streaming runner for the entry agent.
func NewRuntime(ctx context.Context, entry adk.Agent, log *zap.Logger, opts ...Option) *Runtime {
	runner := adk.NewRunner(ctx, adk.RunnerConfig{
		Agent:           entry,
		EnableStreaming: true,
	})

	r := &Runtime{runner: runner, log: log}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	return r
}

// Run sends prompt to the entry agent and waits for the run to finish.
// A nil Reply with a nil error means the agents produced no message.
func (r *Runtime) Run(ctx context.Context, prompt string) (*Reply, error) {
	r.log.Info("user prompt", zap.String("prompt", prompt))
	r.publish(pubsub.StartedEvent, nil)
	defer r.publish(pubsub.FinishedEvent, nil)

	iter := r.runner.Query(ctx, prompt)
	reply, err := r.Drain(ctx, iter)
	switch {
	case err != nil:
		r.metrics.Run("error")
		r.publish(pubsub.FailedEvent, nil)
		return nil, err
	case reply == nil:
		r.metrics.Run("empty")
		r.log.Warn("run produced no message")
	default:
		r.metrics.Run("message")
		r.log.Info("run finished", zap.Bool("confirmation", reply.Confirmation != nil))
	}
	return reply, nil
}

// Drain consumes iter to the end. The last message wins: each MessageOutput
// replaces the previous one and the final one becomes the Reply. The first
// error stops the drain and is returned, and so is a cancelled ctx.
func (r *Runtime) Drain(ctx context.Context, iter *adk.AsyncIterator[*adk.AgentEvent]) (*Reply, error) {
	var last *MessageOutput

	for {
		if err := ctx.Err(); err != nil {
			r.log.Warn("run abandoned", zap.Error(err))
			return nil, err
		}

		ev, ok := iter.Next()
		if !ok {
			break
		}
		r.observe(ev)

		event, err := Classify(ev)
		if err != nil {
			r.log.Error("agent run failed", zap.String("agent", ev.AgentName), zap.Error(err))
			return nil, err
		}
		r.metrics.Event(string(event.Kind()))

		switch e := event.(type) {
		case RawResponse:
			continue
		case AgentUpdated:
			r.log.Info("agent updated", zap.String("from", e.AgentName), zap.String("to", e.NewAgent))
		case ToolCalled:
			for _, call := range e.Calls {
				r.log.Info("tool called",
					zap.String("agent", e.AgentName),
					zap.String("tool", call.Function.Name),
					zap.String("arguments", call.Function.Arguments))
			}
		case ToolOutput:
			r.log.Info("tool output", zap.String("agent", e.AgentName), zap.String("tool", e.ToolName), zap.String("output", e.Output))
		case MessageOutput:
			r.log.Debug("message output", zap.String("agent", e.AgentName), zap.String("text", e.Text))
			last = &e
		case Unknown:
			r.log.Debug("ignoring event", zap.String("agent", e.AgentName), zap.String("tag", e.Tag))
		}

		r.publish(pubsub.UpdatedEvent, event)
	}

	if last == nil {
		return nil, nil
	}
	return NewReply(last.Text), nil
}

func (r *Runtime) publish(t pubsub.EventType, e Event) {
	if r.events != nil {
		r.events.Publish(t, e)
	}
}

// observe hands ev to the event hook. A streamed message is split in two so
// the hook and Classify each get their own reader.
func (r *Runtime) observe(ev *adk.AgentEvent) {
	if r.onEvent == nil || ev == nil {
		return
	}

	seen := *ev
	if ev.Output != nil && ev.Output.MessageOutput != nil {
		mv := ev.Output.MessageOutput
		if mv.IsStreaming && mv.MessageStream != nil {
			copies := mv.MessageStream.Copy(2)
			mv.MessageStream = copies[0]

			hookMV := *mv
			hookMV.MessageStream = copies[1]
			out := *ev.Output
			out.MessageOutput = &hookMV
			seen.Output = &out
		}
	}
	r.onEvent(&seen)
}
