package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mapload/mapload/pkg/loader"
	"github.com/mapload/mapload/pkg/mapping"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

// LoadMappingArgs is the input of the load_mapping tool
type LoadMappingArgs struct {
	Path    string `json:"path,omitempty" jsonschema:"path of a mapping file on the server"`
	Content string `json:"content,omitempty" jsonschema:"mapping document text, used when path is empty"`
	Name    string `json:"name,omitempty" jsonschema:"name reported for content in errors"`
}

// LoadMappingResult is the output of the load_mapping tool
type LoadMappingResult struct {
	OK      bool             `json:"ok"`
	Origin  string           `json:"origin"`
	Dialect string           `json:"dialect,omitempty"`
	Version string           `json:"version,omitempty"`
	Summary *mapping.Summary `json:"summary,omitempty"`
	Error   *LoadFailure     `json:"error,omitempty"`
}

// LoadFailure describes why a document did not load. Line and Column are
// zero when the failure has no position.
type LoadFailure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// NewMCPServer creates an MCP server exposing l as the load_mapping tool
func NewMCPServer(l *loader.Loader, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "mapload", Version: version}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "load_mapping",
		Description: "Load a hibernate-mapping or entity-mappings document and report its dialect, version and declaration counts, or the first problem with its line and column",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LoadMappingArgs) (*mcp.CallToolResult, LoadMappingResult, error) {
		result, err := loadMapping(l, args)
		if err != nil {
			return nil, LoadMappingResult{}, err
		}
		text, err := json.Marshal(result)
		if err != nil {
			return nil, LoadMappingResult{}, fmt.Errorf("failed to encode result: %w", err)
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(text)}},
		}, result, nil
	})
	return server
}

func loadMapping(l *loader.Loader, args LoadMappingArgs) (LoadMappingResult, error) {
	var (
		root   mapping.Root
		err    error
		origin mapping.Origin
	)
	switch {
	case args.Path != "":
		origin = mapping.FileOrigin(args.Path)
		root, err = l.LoadFile(args.Path)
	case args.Content != "":
		origin = mapping.NewOrigin(mapping.OriginInputStream, args.Name)
		root, err = l.LoadBytes([]byte(args.Content), origin)
	default:
		return LoadMappingResult{}, errors.New("either path or content is required")
	}

	result := LoadMappingResult{Origin: origin.String()}
	if err != nil {
		failure := &LoadFailure{Kind: errorKind(err), Message: err.Error()}
		var bindErr *loader.MappingBindError
		if errors.As(err, &bindErr) {
			failure.Message = bindErr.Message
			failure.Line = bindErr.Line
			failure.Column = bindErr.Column
		}
		result.Error = failure
		return result, nil
	}

	summary := root.Summarize()
	result.OK = true
	result.Dialect = root.Dialect.String()
	result.Version = root.Version
	result.Summary = &summary
	return result, nil
}

// NewMCPServerCommand creates the mcp-server command, serving over stdio
func NewMCPServerCommand(g *Globals, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Serve the load_mapping tool over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.Settings(cmd)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return NewMCPServer(NewLoader(s, g.Logger()), version).Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
