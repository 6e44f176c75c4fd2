// Package proto holds the gRPC contract for the external LLM service.
// Run `go generate ./proto` (protoc with protoc-gen-go and protoc-gen-go-grpc)
// to regenerate llm.pb.go and llm_grpc.pb.go after editing llm.proto.
package llmv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
