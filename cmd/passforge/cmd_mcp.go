package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge/internal/mcp"
)

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-serve",
		Short: "Run the MCP server over stdio",
		Long: `Start an MCP (Model Context Protocol) server over stdio, exposing the
generate_wordlist and analyze_password tools to MCP-capable clients.

The server runs until the client disconnects or the process receives
SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			server, err := mcp.NewServer(&mcp.ServerConfig{
				Name:    "passforge",
				Version: version,
				Config:  cfg,
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			return server.Run(cmd.Context())
		},
	}
}
