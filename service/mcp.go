package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harshzz13/medscribe/docload"
	"github.com/harshzz13/medscribe/report"
)

// RegisterMCP registers all medscribe tools on an MCP server.
func (s *Service) RegisterMCP(srv *mcp.Server) {
	s.registerSummarize(srv)
	s.registerExtract(srv)
	s.registerFormats(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// registerTool wires a decode-then-call handler pair onto the server.
// Tool failures are reported through result.SetError, not a protocol error.
func registerTool[T any](srv *mcp.Server, tool *mcp.Tool, handler func(ctx context.Context, req *T) (any, error)) {
	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var p T
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
				var res mcp.CallToolResult
				res.SetError(fmt.Errorf("invalid arguments: %w", err))
				return &res, nil
			}
		}

		resp, err := handler(ctx, &p)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(err)
			return &res, nil
		}

		data, err := json.Marshal(resp)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(fmt.Errorf("marshal: %w", err))
			return &res, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	})
}

func (s *Service) registerSummarize(srv *mcp.Server) {
	type req struct {
		Text    string          `json:"text"`
		Options *optionsPayload `json:"options"`
	}

	tool := &mcp.Tool{
		Name:        "medscribe_summarize",
		Description: "Generate doctor and patient summaries from medical report text",
		InputSchema: inputSchema(map[string]any{
			"text": map[string]any{"type": "string", "description": "Raw medical report text"},
			"options": map[string]any{
				"type":        "object",
				"description": "Summary options",
				"properties": map[string]any{
					"length":                  map[string]any{"type": "string", "description": "Summary length: short, medium or long"},
					"include_medications":     map[string]any{"type": "boolean", "description": "Include the medications block"},
					"include_procedures":      map[string]any{"type": "boolean", "description": "Include the procedures block"},
					"include_recommendations": map[string]any{"type": "boolean", "description": "Include the follow-up block"},
				},
			},
		}, []string{"text"}),
	}

	registerTool(srv, tool, func(_ context.Context, p *req) (any, error) {
		opts, err := s.resolveOptions(p.Options)
		if err != nil {
			return nil, err
		}
		return s.Summarize(p.Text, opts), nil
	})
}

func (s *Service) registerExtract(srv *mcp.Server) {
	type req struct {
		Text string `json:"text"`
	}
	type resp struct {
		Normalized string            `json:"normalized"`
		Sections   map[string]string `json:"sections"`
		Info       report.Info       `json:"info"`
	}

	tool := &mcp.Tool{
		Name:        "medscribe_extract",
		Description: "Normalize report text and extract its sections and clinical entities",
		InputSchema: inputSchema(map[string]any{
			"text": map[string]any{"type": "string", "description": "Raw medical report text"},
		}, []string{"text"}),
	}

	registerTool(srv, tool, func(_ context.Context, p *req) (any, error) {
		normalized, sections, info := s.Extract(p.Text)
		return &resp{Normalized: normalized, Sections: sections, Info: info}, nil
	})
}

func (s *Service) registerFormats(srv *mcp.Server) {
	type req struct{}

	tool := &mcp.Tool{
		Name:        "medscribe_formats",
		Description: "List the document formats accepted for upload extraction",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	registerTool(srv, tool, func(_ context.Context, _ *req) (any, error) {
		return map[string][]string{"formats": docload.SupportedFormats()}, nil
	})
}
