package agent

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	llmv1 "github.com/reportline/reportline/proto"
)

// GRPCLLMClient implements LLMClient by calling the external LLM service via gRPC.
type GRPCLLMClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCLLMClient creates a new gRPC LLM client. grpc.NewClient dials
// lazily; the actual connection happens on the first RPC.
func NewGRPCLLMClient(addr string) (*GRPCLLMClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCLLMClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Generate sends a conversation to the LLM and returns a channel of chunks.
func (c *GRPCLLMClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	stream, err := c.client.Generate(ctx, toProtoRequest(input))
	if err != nil {
		return nil, fmt.Errorf("gRPC Generate call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: false}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoResponse(resp)
			if chunk == nil {
				continue
			}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCLLMClient) Close() error {
	return c.conn.Close()
}

func toProtoRequest(input *GenerateInput) *llmv1.GenerateRequest {
	messages := make([]*llmv1.ChatMessage, len(input.Messages))
	for i, m := range input.Messages {
		messages[i] = &llmv1.ChatMessage{Role: m.Role, Content: m.Content}
	}
	return &llmv1.GenerateRequest{
		JobId:       input.JobID,
		AgentId:     input.AgentID,
		Messages:    messages,
		Temperature: input.Temperature,
		MaxTokens:   int32(input.MaxTokens),
		Model:       input.Model,
	}
}

func fromProtoResponse(resp *llmv1.GenerateResponse) Chunk {
	switch c := resp.Chunk.(type) {
	case *llmv1.GenerateResponse_Text:
		return &TextChunk{Content: c.Text.GetContent()}
	case *llmv1.GenerateResponse_Usage:
		return &UsageChunk{
			InputTokens:  c.Usage.GetInputTokens(),
			OutputTokens: c.Usage.GetOutputTokens(),
			TotalTokens:  c.Usage.GetTotalTokens(),
		}
	case *llmv1.GenerateResponse_Error:
		return &ErrorChunk{
			Message:   c.Error.GetMessage(),
			Code:      c.Error.GetCode(),
			Retryable: c.Error.GetRetryable(),
		}
	default:
		return nil
	}
}
