// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the recording repository as tools via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mbraun/recyourself/internal/recording"
)

// Server wraps the MCP server with recording tools.
type Server struct {
	mcp *server.MCPServer
	svc *recording.Service
}

// New creates a new MCP server with all recording tools registered.
func New(svc *recording.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"RecYourSelf",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_recordings",
		mcp.WithDescription("List all recordings in creation order."),
	), s.listRecordings)

	s.mcp.AddTool(mcp.NewTool("create_recording",
		mcp.WithDescription("Create a new recording. The audio payload MUST follow the "+
			"audio payload contract (base64 data URI or inline value). Read the contract "+
			"first via the get_audio_contract tool or the recyourself://audio-format resource."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Recording title")),
		mcp.WithString("description", mcp.Required(), mcp.Description("Recording description")),
		mcp.WithString("audio", mcp.Required(), mcp.Description("Audio payload (data:audio/...;base64,<data> or inline value)")),
	), s.createRecording)

	s.mcp.AddTool(mcp.NewTool("update_recording",
		mcp.WithDescription("Overwrite title and description of an existing recording. "+
			"Both fields are written exactly as sent; audio and createdAt never change."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Recording id")),
		mcp.WithString("title", mcp.Required(), mcp.Description("New title")),
		mcp.WithString("description", mcp.Required(), mcp.Description("New description")),
	), s.updateRecording)

	s.mcp.AddTool(mcp.NewTool("delete_recording",
		mcp.WithDescription("Delete a recording and its materialized audio file."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Recording id")),
	), s.deleteRecording)

	s.mcp.AddTool(mcp.NewTool("backup_recordings",
		mcp.WithDescription("Snapshot the current recording list to a new timestamped backup file."),
	), s.backupRecordings)

	// Resource: audio payload contract.
	s.mcp.AddResource(
		mcp.NewResource("recyourself://audio-format", "Audio Payload Contract",
			mcp.WithResourceDescription("Canonical audio payload format accepted at create time."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readAudioFormatResource,
	)

	s.mcp.AddTool(mcp.NewTool("get_audio_contract",
		mcp.WithDescription("Returns the canonical audio payload contract. "+
			"Call this before creating recordings to ensure correct payload structure."),
	), s.getAudioContract)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listRecordings(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recs := s.svc.List(ctx)
	out, _ := json.MarshalIndent(recs, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createRecording(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	audio, err := req.RequireString("audio")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec, err := s.svc.Create(ctx, title, description, audio)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(rec, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) updateRecording(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description, err := req.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec, err := s.svc.Update(ctx, id, title, description)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(rec, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) deleteRecording(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.svc.Delete(ctx, id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted: %d", id)), nil
}

func (s *Server) backupRecordings(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location, err := s.svc.Backup(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("backup written: %s", location)), nil
}

func (s *Server) getAudioContract(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(AudioPayloadContract), nil
}

func (s *Server) readAudioFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "recyourself://audio-format",
			MIMEType: "text/markdown",
			Text:     AudioPayloadContract,
		},
	}, nil
}
