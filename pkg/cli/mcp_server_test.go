package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mapload/mapload/pkg/loader"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func connectMCP(t *testing.T, l *loader.Loader) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := NewMCPServer(l, "test").Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "mapload-test", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callLoadMapping(t *testing.T, session *mcp.ClientSession, args map[string]any) (*mcp.CallToolResult, LoadMappingResult) {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "load_mapping", Arguments: args})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	var out LoadMappingResult
	if res.IsError {
		return res, out
	}
	if len(res.Content) == 0 {
		t.Fatal("Expected content in result")
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", res.Content[0])
	}
	if err := json.Unmarshal([]byte(text.Text), &out); err != nil {
		t.Fatalf("invalid result json: %v", err)
	}
	return res, out
}

func TestMCPServerListsTool(t *testing.T) {
	session := connectMCP(t, loader.New())
	tools, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	if len(tools.Tools) != 1 || tools.Tools[0].Name != "load_mapping" {
		t.Errorf("Unexpected tools: %+v", tools.Tools)
	}
}

func TestMCPServerLoadPath(t *testing.T) {
	session := connectMCP(t, loader.New())
	_, out := callLoadMapping(t, session, map[string]any{"path": filepath.Join("testdata", "order.hbm.xml")})

	if !out.OK || out.Dialect != "legacy" {
		t.Fatalf("Unexpected result: %+v", out)
	}
	if out.Summary == nil || out.Summary.Classes != 2 || out.Summary.Queries != 1 {
		t.Errorf("Unexpected summary: %+v", out.Summary)
	}
}

func TestMCPServerLoadContent(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "broken.hbm.xml"))
	if err != nil {
		t.Fatal(err)
	}
	session := connectMCP(t, loader.New())
	_, out := callLoadMapping(t, session, map[string]any{"content": string(content), "name": "inline"})

	if out.OK || out.Error == nil {
		t.Fatalf("Expected failure, got %+v", out)
	}
	if out.Error.Kind != "bind" || out.Error.Line != 5 {
		t.Errorf("Unexpected failure: %+v", out.Error)
	}
	if out.Origin != "input-stream:inline" {
		t.Errorf("Unexpected origin %q", out.Origin)
	}
}

func TestMCPServerRequiresInput(t *testing.T) {
	session := connectMCP(t, loader.New())
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "load_mapping", Arguments: map[string]any{}})
	if err == nil && !res.IsError {
		t.Error("Expected a tool error when neither path nor content is given")
	}
}
