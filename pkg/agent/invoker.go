package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reportline/reportline/pkg/models"
)

const (
	// invokeTemperature is deliberately low: agent outputs feed downstream
	// agents as structured input, so we want stable, parseable JSON.
	invokeTemperature = 0.1

	invokeMaxTokens = 4096

	// degradedConfidence is assigned when no JSON object could be extracted
	// and the raw text is passed through instead.
	degradedConfidence = 0.5

	defaultConfidence = 1.0
)

// Reserved top-level keys the model may emit alongside its schema fields.
// They are lifted into AgentOutput and do not count toward the schema bound.
const (
	reasoningKey  = "reasoning"
	confidenceKey = "confidence"
)

const jsonInstruction = "Respond with a single strict JSON object and nothing else. " +
	"Do not include any prose before or after the JSON."

// LLMInvoker calls the LLM for one agent and converts the response into an
// AgentOutput. Invoke never returns a Go error: transport failures, timeouts,
// and schema violations all surface as Status == OutputError.
type LLMInvoker struct {
	llm    LLMClient
	model  string
	logger *slog.Logger
}

// NewLLMInvoker creates an invoker backed by the given LLM client.
func NewLLMInvoker(llm LLMClient, model string, logger *slog.Logger) *LLMInvoker {
	return &LLMInvoker{
		llm:    llm,
		model:  model,
		logger: logger.With("component", "invoker"),
	}
}

// Invoke runs one agent against the LLM. The caller controls the deadline via
// ctx; on deadline breach the result is an error output with a timeout message.
func (inv *LLMInvoker) Invoke(ctx context.Context, jobID string, def *models.AgentDef, input map[string]any) *models.AgentOutput {
	raw, err := inv.complete(ctx, jobID, def, input)
	if err != nil {
		inv.logger.Warn("LLM call failed",
			"job_id", jobID,
			"agent_id", def.AgentID,
			"error", err)
		return errorOutput(invokeErrorMessage(ctx, err))
	}

	parsed, ok := extractJSON(raw)
	if !ok {
		// No JSON anywhere in the response. Pass the text through rather
		// than failing the whole run over a formatting slip.
		return &models.AgentOutput{
			Status:     models.OutputSuccess,
			Output:     map[string]any{"raw_response": raw},
			Confidence: degradedConfidence,
		}
	}

	out := &models.AgentOutput{
		Status:     models.OutputSuccess,
		Confidence: defaultConfidence,
	}
	liftReserved(parsed, out)

	if err := validateOutput(parsed, def.OutputSchema); err != nil {
		return errorOutput(err.Error())
	}
	out.Output = parsed
	return out
}

// complete sends the prompt and accumulates the streamed text response.
func (inv *LLMInvoker) complete(ctx context.Context, jobID string, def *models.AgentDef, input map[string]any) (string, error) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to serialize agent input: %w", err)
	}

	userPrompt := fmt.Sprintf("Input:\n%s\n\n%s", inputJSON, jsonInstruction)
	chunks, err := inv.llm.Generate(ctx, &GenerateInput{
		JobID:   jobID,
		AgentID: def.AgentID,
		Messages: []ConversationMessage{
			{Role: RoleSystem, Content: def.SystemPrompt},
			{Role: RoleUser, Content: userPrompt},
		},
		Temperature: invokeTemperature,
		MaxTokens:   invokeMaxTokens,
		Model:       inv.model,
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for {
		select {
		case chunk, open := <-chunks:
			if !open {
				return sb.String(), nil
			}
			switch c := chunk.(type) {
			case *TextChunk:
				sb.WriteString(c.Content)
			case *ErrorChunk:
				return "", fmt.Errorf("LLM provider error: %s", c.Message)
			case *UsageChunk:
				inv.logger.Debug("LLM usage",
					"job_id", jobID,
					"agent_id", def.AgentID,
					"total_tokens", c.TotalTokens)
			}
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

// invokeErrorMessage maps a transport error to the message recorded on the
// error output, distinguishing deadline breaches.
func invokeErrorMessage(ctx context.Context, err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "timeout: agent invocation exceeded its deadline"
	}
	return err.Error()
}

// extractJSON pulls a JSON object out of an LLM response: first a direct
// parse of the whole text, then the contents of the first fenced code block.
func extractJSON(raw string) (map[string]any, bool) {
	if m, ok := parseObject(raw); ok {
		return m, true
	}
	if fenced, ok := fencedBlock(raw); ok {
		if m, ok := parseObject(fenced); ok {
			return m, true
		}
	}
	return nil, false
}

func parseObject(s string) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

// fencedBlock returns the contents of the first ``` fence, tolerating a
// language tag on the opening line.
func fencedBlock(raw string) (string, bool) {
	start := strings.Index(raw, "```")
	if start < 0 {
		return "", false
	}
	rest := raw[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(rest[:nl])
		if !strings.ContainsAny(firstLine, "{}") {
			rest = rest[nl+1:]
		}
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// liftReserved moves the reasoning and confidence keys from the parsed map
// onto the output so they are not counted against the schema bound.
func liftReserved(parsed map[string]any, out *models.AgentOutput) {
	if v, ok := parsed[reasoningKey]; ok {
		if s, ok := v.(string); ok {
			out.Reasoning = s
		}
		delete(parsed, reasoningKey)
	}
	if v, ok := parsed[confidenceKey]; ok {
		if f, ok := v.(float64); ok {
			out.Confidence = f
		}
		delete(parsed, confidenceKey)
	}
}

// validateOutput enforces the output contract: at most five keys, every key
// declared in the agent's output schema.
func validateOutput(parsed map[string]any, schema map[string]string) error {
	if len(parsed) > models.MaxOutputSchemaKeys {
		return fmt.Errorf("agent output has %d keys, limit is %d", len(parsed), models.MaxOutputSchemaKeys)
	}
	for key := range parsed {
		if _, ok := schema[key]; !ok {
			return fmt.Errorf("agent output key %q is not declared in the output schema", key)
		}
	}
	return nil
}

func errorOutput(msg string) *models.AgentOutput {
	return &models.AgentOutput{
		Status:       models.OutputError,
		ErrorMessage: msg,
	}
}
