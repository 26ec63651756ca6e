package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ironsheep/hue-invert/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "hue_invert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies configured defaults for optional parameters
//  3. Loads images from cache
//  4. Calls the imaging function
//  5. Returns the result or error
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_hue_histogram":
		return s.handleImageHueHistogram(args)
	case "hue_invert":
		return s.handleHueInvert(args)
	case "hue_sweep":
		return s.handleHueSweep(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating absent arguments as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", imaging.ErrInvalidArguments, err)
	}
	return nil
}

// windowMode resolves an optional wrap flag against the configured mode.
func (s *Server) windowMode(wrap *bool) (imaging.WindowMode, error) {
	if wrap != nil {
		if *wrap {
			return imaging.WindowWrap, nil
		}
		return imaging.WindowClamp, nil
	}
	return s.cfg.WindowMode()
}

// sampleEncoding resolves an optional encoding name against the configured one.
func (s *Server) sampleEncoding(name string) (imaging.SampleEncoding, error) {
	if name == "" {
		return s.cfg.SampleEncoding()
	}
	return imaging.ParseSampleEncoding(name)
}

// === Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageHueHistogramArgs struct {
	Path string `json:"path"`
	Bins int    `json:"bins"`
}

func (s *Server) handleImageHueHistogram(args json.RawMessage) (interface{}, error) {
	var a imageHueHistogramArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.HueHistogram(img, a.Bins)
}

// === Hue Inversion Handlers ===

type hueInvertArgs struct {
	Path     string   `json:"path"`
	Center   *float64 `json:"center"`
	Radius   *float64 `json:"radius"`
	Wrap     *bool    `json:"wrap"`
	Encoding string   `json:"encoding"`
}

// HueInvertResult contains an inverted image and the window that produced it.
type HueInvertResult struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Center      float64 `json:"center"`
	Radius      float64 `json:"radius"`
	Mode        string  `json:"mode"`
	Low         float64 `json:"low"`  // Lower window bound after clamping
	High        float64 `json:"high"` // Upper window bound after clamping
	Encoding    string  `json:"encoding"`
	ImageBase64 string  `json:"image_base64"`
	MimeType    string  `json:"mime_type"`
}

func (s *Server) handleHueInvert(args json.RawMessage) (interface{}, error) {
	var a hueInvertArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Center == nil || a.Radius == nil {
		return nil, fmt.Errorf("%w: center and radius are required", imaging.ErrInvalidArguments)
	}

	mode, err := s.windowMode(a.Wrap)
	if err != nil {
		return nil, err
	}
	w := imaging.HueWindow{Center: *a.Center, Radius: *a.Radius, Mode: mode}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	enc, err := s.sampleEncoding(a.Encoding)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := imaging.InvertHue(img, w, enc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.EncodePNG(&buf, out); err != nil {
		return nil, err
	}

	lo, hi := w.Bounds()
	return &HueInvertResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		Center:      w.Center,
		Radius:      w.Radius,
		Mode:        mode.String(),
		Low:         lo,
		High:        hi,
		Encoding:    enc.String(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

type hueSweepArgs struct {
	Path       string   `json:"path"`
	Radius     *float64 `json:"radius"`
	Step       *float64 `json:"step"`
	IntervalMS *int     `json:"interval_ms"`
	Wrap       *bool    `json:"wrap"`
	Encoding   string   `json:"encoding"`
}

// HueSweepResult contains an encoded sweep animation.
type HueSweepResult struct {
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	FrameCount  int       `json:"frame_count"`
	Centers     []float64 `json:"centers"`
	Radius      float64   `json:"radius"`
	Step        float64   `json:"step"`
	IntervalMS  int       `json:"interval_ms"`
	Mode        string    `json:"mode"`
	ImageBase64 string    `json:"image_base64"`
	MimeType    string    `json:"mime_type"`
}

func (s *Server) handleHueSweep(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a hueSweepArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	sweep, err := s.cfg.SweepSpec()
	if err != nil {
		return nil, err
	}
	if a.Radius != nil {
		sweep.Radius = *a.Radius
	}
	if a.Step != nil {
		sweep.Step = *a.Step
	}
	if a.IntervalMS != nil {
		sweep.Interval = time.Duration(*a.IntervalMS) * time.Millisecond
	}
	if sweep.Mode, err = s.windowMode(a.Wrap); err != nil {
		return nil, err
	}
	if err := sweep.Validate(); err != nil {
		return nil, err
	}
	enc, err := s.sampleEncoding(a.Encoding)
	if err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	frames, err := sweep.Render(ctx, img, enc, s.cfg.Render.Workers)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.EncodeGIF(&buf, frames, sweep.Interval); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &HueSweepResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		FrameCount:  len(frames),
		Centers:     sweep.Centers(),
		Radius:      sweep.Radius,
		Step:        sweep.Step,
		IntervalMS:  int(sweep.Interval / time.Millisecond),
		Mode:        sweep.Mode.String(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/gif",
	}, nil
}
