// Package mcp provides an MCP (Model Context Protocol) server exposing
// passforge's wordlist generation and password analysis as tools.
package mcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/passforge/passforge/internal/analysis"
	"github.com/passforge/passforge/internal/config"
	"github.com/passforge/passforge/internal/history"
)

// Server wraps the MCP SDK server and provides passforge-specific
// functionality.
type Server struct {
	server   *sdk.Server
	cfg      *config.Config
	analyzer *analysis.Analyzer
	history  *history.Store
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Name    string         // Server name (e.g., "passforge")
	Version string         // Server version
	Config  *config.Config // Effective passforge configuration
}

// NewServer creates a new MCP server with passforge tools.
func NewServer(sc *ServerConfig) (*Server, error) {
	cfg := sc.Config
	if cfg == nil {
		cfg = config.Default()
	}

	// Open the history store only when recording is enabled; the tools
	// work fine without it.
	var store *history.Store
	if cfg.History.Enabled {
		path := cfg.History.Path
		if path == "" {
			dir, err := config.Dir()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve history path: %w", err)
			}
			path = filepath.Join(dir, "history.db")
		}
		var err error
		store, err = history.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open history store: %w", err)
		}
	}

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    sc.Name,
		Version: sc.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			// Client initialized, ready to serve
		},
	})

	s := &Server{
		server:   mcpServer,
		cfg:      cfg,
		analyzer: analysis.NewAnalyzer(),
		history:  store,
	}

	// Register tools
	if err := s.registerTools(); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle OS signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	// Run server (blocks)
	err := s.server.Run(ctx, &sdk.StdioTransport{})

	// Clean up
	s.Close()

	return err
}

// Close closes the server and releases resources.
func (s *Server) Close() error {
	if s.history != nil {
		return s.history.Close()
	}
	return nil
}
