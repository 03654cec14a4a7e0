package main

import (
	"context"
	"errors"
)

// Run executes the mcp command. It blocks until the client disconnects or
// the context is canceled.
func (c *MCPCmd) Run(deps *Dependencies) error {
	deps.Logger.Info("serving MCP")
	if err := deps.MCPServer.Run(deps.Ctx, deps.Transport); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
