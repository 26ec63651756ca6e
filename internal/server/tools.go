package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth and whether it has alpha. The image is cached for subsequent calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color of the pixel at (x, y) as hex, RGB and HSV. The HSV hue (0-360) can be used directly as a hue_invert center.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0 = left edge)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0 = top edge)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_hue_histogram",
			Description: "Histogram of the hues of all chromatic pixels. Near-gray pixels are counted separately because inverting their hue has no visible effect.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"bins": map[string]interface{}{
						"type":        "integer",
						"description": "Number of equal-width hue bins. Default 36 (10 degrees each)",
						"default":     36,
					},
				},
				"required": []string{"path"},
			},
		},

		// Hue Inversion
		{
			Name:        "hue_invert",
			Description: "Rotate by 180 degrees every hue within radius degrees of center, leaving saturation and value unchanged. Returns the result as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"center": map[string]interface{}{
						"type":        "number",
						"description": "Window center hue in degrees, 0 <= center < 360",
					},
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Window half-width in degrees (>= 0)",
					},
					"wrap": map[string]interface{}{
						"type":        "boolean",
						"description": "Wrap the window across 0/360 instead of clamping it. Default from config (clamp)",
					},
					"encoding": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"8bit", "16bit"},
						"description": "Sample encoding used to normalize the source. Default from config (8bit)",
					},
				},
				"required": []string{"path", "center", "radius"},
			},
		},
		{
			Name:        "hue_sweep",
			Description: "Render an animation sliding a fixed-radius hue window across the hue circle and return it as base64-encoded GIF along with the window center of each frame.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Window half-width in degrees, must be < 180. Default 20",
						"default":     20,
					},
					"step": map[string]interface{}{
						"type":        "number",
						"description": "Center advance per frame in degrees. Default 10",
						"default":     10,
					},
					"interval_ms": map[string]interface{}{
						"type":        "integer",
						"description": "Frame display time in milliseconds. Default 200",
						"default":     200,
					},
					"wrap": map[string]interface{}{
						"type":        "boolean",
						"description": "Wrap windows across 0/360 instead of clamping them",
					},
					"encoding": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"8bit", "16bit"},
						"description": "Sample encoding used to normalize the source",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
