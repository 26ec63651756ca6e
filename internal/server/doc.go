// Package server implements the MCP (Model Context Protocol) server for hue inversion.
//
// This package provides a JSON-RPC 2.0 server that exposes the hue tools
// through the MCP protocol, so an MCP-compatible client can inspect an image's
// colors, choose a hue window and get the inverted result back.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - image_load: Load image and get metadata
//   - image_sample_color: Get hex, RGB and HSV at a pixel
//   - image_hue_histogram: Distribution of chromatic hues
//
// Hue Inversion:
//   - hue_invert: Rotate hues inside a window by 180 degrees (base64 PNG)
//   - hue_sweep: Animate a window across the hue circle (base64 GIF)
//
// Optional arguments (window mode, sample encoding, sweep radius, step and
// interval, worker count) default to the values of the config.Config passed
// to New.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
// The server is started by the "hue-invert mcp" command:
//
//	srv := server.New(cfg, version)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
