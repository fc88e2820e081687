package agent

import (
	"strings"

	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/schema"
)

// Kind is the discriminator of an Event.
type Kind string

const (
	KindRawResponse  Kind = "raw_response_event"
	KindAgentUpdated Kind = "agent_updated_stream_event"
	KindToolCalled   Kind = "tool_call_item"
	KindToolOutput   Kind = "tool_call_output_item"
	KindMessage      Kind = "message_output_item"
	KindUnknown      Kind = "unknown_event"
)

// Event is a classified agent stream event. The set of implementations is
// closed: RawResponse, AgentUpdated, ToolCalled, ToolOutput, MessageOutput
// and Unknown.
type Event interface {
	Kind() Kind
	// Agent is the name of the agent that emitted the event.
	Agent() string
	isEvent()
}

// RawResponse is a low-level event without a message or a handoff.
type RawResponse struct {
	AgentName string
}

// AgentUpdated reports a handoff to NewAgent.
type AgentUpdated struct {
	AgentName string
	NewAgent  string
}

// ToolCalled reports that the model asked for one or more tool calls.
type ToolCalled struct {
	AgentName string
	Calls     []schema.ToolCall
}

// ToolOutput carries the result of a single tool call.
type ToolOutput struct {
	AgentName string
	ToolName  string
	CallID    string
	Output    string
}

// MessageOutput is a message produced by the model for the user.
type MessageOutput struct {
	AgentName string
	Text      string
}

// Unknown is an event whose shape is not recognised. Tag says what it was.
type Unknown struct {
	AgentName string
	Tag       string
}

func (RawResponse) Kind() Kind   { return KindRawResponse }
func (AgentUpdated) Kind() Kind  { return KindAgentUpdated }
func (ToolCalled) Kind() Kind    { return KindToolCalled }
func (ToolOutput) Kind() Kind    { return KindToolOutput }
func (MessageOutput) Kind() Kind { return KindMessage }
func (Unknown) Kind() Kind       { return KindUnknown }

func (e RawResponse) Agent() string   { return e.AgentName }
func (e AgentUpdated) Agent() string  { return e.AgentName }
func (e ToolCalled) Agent() string    { return e.AgentName }
func (e ToolOutput) Agent() string    { return e.AgentName }
func (e MessageOutput) Agent() string { return e.AgentName }
func (e Unknown) Agent() string       { return e.AgentName }

func (RawResponse) isEvent()   {}
func (AgentUpdated) isEvent()  {}
func (ToolCalled) isEvent()    {}
func (ToolOutput) isEvent()    {}
func (MessageOutput) isEvent() {}
func (Unknown) isEvent()       {}

// Classify maps one ADK event onto an Event. An event that carries an error,
// or whose message stream fails, is returned as an error instead.
//
// Streaming message output is read to the end here, so the caller must not
// read ev's stream afterwards.
func Classify(ev *adk.AgentEvent) (Event, error) {
	if ev == nil {
		return Unknown{Tag: "nil"}, nil
	}
	if ev.Err != nil {
		return nil, ev.Err
	}

	name := ev.AgentName
	if ev.Action != nil && ev.Action.TransferToAgent != nil {
		return AgentUpdated{AgentName: name, NewAgent: ev.Action.TransferToAgent.DestAgentName}, nil
	}

	if ev.Output == nil {
		if ev.Action == nil {
			return RawResponse{AgentName: name}, nil
		}
		return Unknown{AgentName: name, Tag: actionTag(ev.Action)}, nil
	}

	mv := ev.Output.MessageOutput
	if mv == nil {
		return Unknown{AgentName: name, Tag: "customized_output"}, nil
	}

	msg, err := mv.GetMessage()
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return RawResponse{AgentName: name}, nil
	}

	role := mv.Role
	if role == "" {
		role = msg.Role
	}

	switch role {
	case schema.Tool:
		toolName := mv.ToolName
		if toolName == "" {
			toolName = msg.ToolName
		}
		return ToolOutput{AgentName: name, ToolName: toolName, CallID: msg.ToolCallID, Output: msg.Content}, nil
	case schema.Assistant:
		if len(msg.ToolCalls) > 0 {
			return ToolCalled{AgentName: name, Calls: msg.ToolCalls}, nil
		}
		if strings.TrimSpace(msg.Content) == "" {
			return RawResponse{AgentName: name}, nil
		}
		return MessageOutput{AgentName: name, Text: msg.Content}, nil
	default:
		return Unknown{AgentName: name, Tag: "message_role:" + string(role)}, nil
	}
}

func actionTag(a *adk.AgentAction) string {
	switch {
	case a.Exit:
		return "exit"
	case a.Interrupted != nil:
		return "interrupted"
	case a.BreakLoop != nil:
		return "break_loop"
	case a.CustomizedAction != nil:
		return "customized_action"
	default:
		return "action"
	}
}
