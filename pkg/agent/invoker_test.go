package agent

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportline/reportline/pkg/models"
)

// scriptedLLM returns canned chunk sequences, one script per call, recording
// each GenerateInput for assertions.
type scriptedLLM struct {
	scripts [][]Chunk
	calls   []*GenerateInput
}

func (s *scriptedLLM) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	s.calls = append(s.calls, input)
	var script []Chunk
	if len(s.scripts) > 0 {
		script = s.scripts[0]
		s.scripts = s.scripts[1:]
	}
	ch := make(chan Chunk, len(script))
	for _, c := range script {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

func textScript(parts ...string) []Chunk {
	chunks := make([]Chunk, len(parts))
	for i, p := range parts {
		chunks[i] = &TextChunk{Content: p}
	}
	return chunks
}

func testAgent() *models.AgentDef {
	return &models.AgentDef{
		AgentID:      "triage",
		Name:         "Triage",
		Class:        models.ClassIngestion,
		SystemPrompt: "You classify incoming reports.",
		OutputSchema: map[string]string{
			"category": "string",
			"severity": "string",
		},
	}
}

func newTestInvoker(llm LLMClient) *LLMInvoker {
	return NewLLMInvoker(llm, "test-model", slog.Default())
}

func TestInvokeDirectJSON(t *testing.T) {
	llm := &scriptedLLM{scripts: [][]Chunk{
		textScript(`{"category": "outage", `, `"severity": "high"}`),
	}}
	inv := newTestInvoker(llm)

	out := inv.Invoke(context.Background(), "job-1", testAgent(), map[string]any{
		models.RawInputKey: "db is down",
	})

	require.Equal(t, models.OutputSuccess, out.Status)
	assert.Equal(t, map[string]any{"category": "outage", "severity": "high"}, out.Output)
	assert.Equal(t, 1.0, out.Confidence)
	assert.Empty(t, out.ErrorMessage)
}

func TestInvokePromptConstruction(t *testing.T) {
	llm := &scriptedLLM{scripts: [][]Chunk{textScript(`{"category": "x"}`)}}
	inv := newTestInvoker(llm)

	inv.Invoke(context.Background(), "job-1", testAgent(), map[string]any{
		models.RawInputKey: "db is down",
	})

	require.Len(t, llm.calls, 1)
	call := llm.calls[0]
	assert.Equal(t, "job-1", call.JobID)
	assert.Equal(t, "triage", call.AgentID)
	assert.Equal(t, invokeTemperature, call.Temperature)
	require.Len(t, call.Messages, 2)
	assert.Equal(t, RoleSystem, call.Messages[0].Role)
	assert.Equal(t, "You classify incoming reports.", call.Messages[0].Content)
	assert.Equal(t, RoleUser, call.Messages[1].Role)
	assert.Contains(t, call.Messages[1].Content, `"raw_input":"db is down"`)
	assert.Contains(t, call.Messages[1].Content, "strict JSON")
}

func TestInvokeFencedJSON(t *testing.T) {
	llm := &scriptedLLM{scripts: [][]Chunk{
		textScript("Here is my answer:\n```json\n{\"category\": \"spam\"}\n```\nDone."),
	}}
	inv := newTestInvoker(llm)

	out := inv.Invoke(context.Background(), "job-1", testAgent(), map[string]any{})

	require.Equal(t, models.OutputSuccess, out.Status)
	assert.Equal(t, map[string]any{"category": "spam"}, out.Output)
}

func TestInvokeDegradedRawResponse(t *testing.T) {
	llm := &scriptedLLM{scripts: [][]Chunk{
		textScript("I could not produce JSON, sorry."),
	}}
	inv := newTestInvoker(llm)

	out := inv.Invoke(context.Background(), "job-1", testAgent(), map[string]any{})

	require.Equal(t, models.OutputSuccess, out.Status)
	assert.Equal(t, map[string]any{"raw_response": "I could not produce JSON, sorry."}, out.Output)
	assert.Equal(t, degradedConfidence, out.Confidence)
}

func TestInvokeLiftsReasoningAndConfidence(t *testing.T) {
	llm := &scriptedLLM{scripts: [][]Chunk{
		textScript(`{"category": "outage", "reasoning": "matched keywords", "confidence": 0.8}`),
	}}
	inv := newTestInvoker(llm)

	out := inv.Invoke(context.Background(), "job-1", testAgent(), map[string]any{})

	require.Equal(t, models.OutputSuccess, out.Status)
	assert.Equal(t, "matched keywords", out.Reasoning)
	assert.Equal(t, 0.8, out.Confidence)
	assert.Equal(t, map[string]any{"category": "outage"}, out.Output)
}

func TestInvokeSchemaViolations(t *testing.T) {
	t.Run("undeclared key", func(t *testing.T) {
		llm := &scriptedLLM{scripts: [][]Chunk{
			textScript(`{"category": "outage", "bogus": 1}`),
		}}
		out := newTestInvoker(llm).Invoke(context.Background(), "job-1", testAgent(), map[string]any{})
		require.Equal(t, models.OutputError, out.Status)
		assert.Nil(t, out.Output)
		assert.Contains(t, out.ErrorMessage, `"bogus"`)
	})

	t.Run("too many keys", func(t *testing.T) {
		def := testAgent()
		def.OutputSchema = map[string]string{
			"a": "string", "b": "string", "c": "string", "d": "string", "e": "string",
		}
		llm := &scriptedLLM{scripts: [][]Chunk{
			textScript(`{"a":1,"b":2,"c":3,"d":4,"e":5,"f":6}`),
		}}
		out := newTestInvoker(llm).Invoke(context.Background(), "job-1", def, map[string]any{})
		require.Equal(t, models.OutputError, out.Status)
		assert.Contains(t, out.ErrorMessage, "limit is 5")
	})
}

func TestInvokeProviderError(t *testing.T) {
	llm := &scriptedLLM{scripts: [][]Chunk{
		{&ErrorChunk{Message: "rate limited", Code: "429"}},
	}}
	out := newTestInvoker(llm).Invoke(context.Background(), "job-1", testAgent(), map[string]any{})

	require.Equal(t, models.OutputError, out.Status)
	assert.Nil(t, out.Output)
	assert.Contains(t, out.ErrorMessage, "rate limited")
}

func TestInvokeTimeout(t *testing.T) {
	// A client that never delivers; the context deadline must cut it off.
	llm := &hangingLLM{}
	inv := newTestInvoker(llm)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	out := inv.Invoke(ctx, "job-1", testAgent(), map[string]any{})

	require.Equal(t, models.OutputError, out.Status)
	assert.Contains(t, out.ErrorMessage, "timeout")
}

type hangingLLM struct{}

func (h *hangingLLM) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	return make(chan Chunk), nil
}

func (h *hangingLLM) Close() error { return nil }

func TestFencedBlock(t *testing.T) {
	t.Run("with language tag", func(t *testing.T) {
		body, ok := fencedBlock("```json\n{\"x\":1}\n```")
		require.True(t, ok)
		assert.JSONEq(t, `{"x":1}`, body)
	})

	t.Run("without language tag", func(t *testing.T) {
		body, ok := fencedBlock("```\n{\"x\":1}\n```")
		require.True(t, ok)
		assert.JSONEq(t, `{"x":1}`, body)
	})

	t.Run("unterminated fence", func(t *testing.T) {
		_, ok := fencedBlock("```json\n{\"x\":1}")
		assert.False(t, ok)
	})

	t.Run("no fence", func(t *testing.T) {
		_, ok := fencedBlock("plain text")
		assert.False(t, ok)
	})
}
