package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var testMCPImpl = &mcp.Implementation{Name: "medscribe-test", Version: "0.1.0"}

func mcpSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	svc := New(DefaultConfig(), nil)
	srv := mcp.NewServer(testMCPImpl, nil)
	svc.RegisterMCP(srv)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	client := mcp.NewClient(testMCPImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func mcpCallTool(t *testing.T, session *mcp.ClientSession, name string, args any) string {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if err := result.GetError(); err != nil {
		t.Fatalf("CallTool(%s) tool error: %v", name, err)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent", name)
	}
	return tc.Text
}

func TestMCPFormats(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "medscribe_formats", map[string]any{})

	var resp struct {
		Formats []string `json:"formats"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Formats) != 5 {
		t.Errorf("expected 5 formats, got %d: %v", len(resp.Formats), resp.Formats)
	}
}

func TestMCPSummarize(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "medscribe_summarize", map[string]any{
		"text":    "diagnosed with pneumonia. treated with rest and fluids.",
		"options": map[string]any{"length": "short"},
	})

	var res Result
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(res.ReportID, "rpt_") {
		t.Errorf("ReportID = %q", res.ReportID)
	}
	if !strings.Contains(res.PatientSummary, "lung infection") {
		t.Errorf("PatientSummary = %q", res.PatientSummary)
	}
}

func TestMCPExtract(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "medscribe_extract", map[string]any{
		"text": "Chief Complaint: chest pain for two days",
	})

	var resp struct {
		Normalized string            `json:"normalized"`
		Sections   map[string]string `json:"sections"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Normalized == "" {
		t.Error("normalized text missing")
	}
	if _, ok := resp.Sections["chief complaint"]; !ok {
		t.Errorf("sections = %v, want chief complaint", resp.Sections)
	}
}
