package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/khanhnv2901/iotscan/internal/dispatch"
	secerrors "github.com/khanhnv2901/iotscan/internal/shared/errors"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the assessment tools as an MCP stdio server",
	RunE: func(cmd *cobra.Command, args []string) error {
		flagInterval, _ := cmd.Flags().GetDuration("ledger-compact-interval")
		compactEvery := compactInterval(flagInterval)

		application := newApp()

		s := server.NewMCPServer("iotscan", Version)
		registerTools(s, application)

		// Aged ledger entries can't affect admission; drop them so the
		// ledger stays bounded on long-running servers.
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			ticker := time.NewTicker(compactEvery)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if dropped := application.ledger.Compact(); dropped > 0 {
						application.logger.Infow("ledger compacted", "dropped", dropped)
					}
				case <-stop:
					return
				}
			}
		}()

		application.logger.Infow("serving MCP over stdio", "tools", len(toolCatalog()))
		return server.ServeStdio(s)
	},
}

const defaultCompactInterval = 10 * time.Minute

func init() {
	serveCmd.Flags().Duration("ledger-compact-interval", defaultCompactInterval, "how often aged ledger entries are dropped")
}

// compactInterval falls back to the default for non-positive flag values,
// which time.NewTicker would refuse.
func compactInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultCompactInterval
	}
	return d
}

// registerTools declares every catalog tool with its typed schema.
func registerTools(s *server.MCPServer, application *app) {
	for _, spec := range toolCatalog() {
		opts := []mcp.ToolOption{
			mcp.WithDescription(spec.Description),
			mcp.WithString(spec.TargetKey, mcp.Description(spec.TargetDesc), mcp.Required()),
		}
		for _, o := range spec.Options {
			opts = append(opts, schemaOption(o))
		}
		s.AddTool(mcp.NewTool(string(spec.ID), opts...), toolHandler(application, spec.ID, spec.TargetKey))
	}
}

func schemaOption(o toolOption) mcp.ToolOption {
	if o.Type == "boolean" {
		props := []mcp.PropertyOption{mcp.Description(o.Description)}
		if o.HasDefault {
			props = append(props, mcp.DefaultBool(o.BoolDef))
		}
		return mcp.WithBoolean(o.Name, props...)
	}
	props := []mcp.PropertyOption{mcp.Description(o.Description)}
	if len(o.Enum) > 0 {
		props = append(props, mcp.Enum(o.Enum...))
	}
	if o.HasDefault {
		props = append(props, mcp.DefaultString(o.StringDef))
	}
	return mcp.WithString(o.Name, props...)
}

// toolHandler adapts one dispatcher tool to the MCP call interface. Typed
// errors become tool-error results; the transport never sees a raw fault.
func toolHandler(application *app, id dispatch.ToolID, targetKey string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		arguments := request.GetArguments()
		target, _ := arguments[targetKey].(string)

		text, err := application.dispatcher.Dispatch(ctx, dispatch.Request{
			Tool:    id,
			Target:  target,
			Options: arguments,
		})
		if err != nil {
			var rejection *secerrors.RejectionError
			if errors.As(err, &rejection) {
				return mcp.NewToolResultError("Security Validation Failed: " + rejection.Reason.Error()), nil
			}
			return mcp.NewToolResultError("Error: " + err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}
