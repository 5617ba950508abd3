// Package service hosts the MCP stdio server exposing the text composer to
// assistant clients.
package service

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hauswerk/dokuhilfe/internal/storage"
)

const serverName = "dokuhilfe"

// Server wraps the MCP server with its storage dependency.
type Server struct {
	server *mcp.Server
}

// NewServer builds an MCP server with the composer tools registered.
func NewServer(version string, store storage.Store) *Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	registerComposerTools(server, store)
	return &Server{server: server}
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
