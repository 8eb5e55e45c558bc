package gosolve_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gosolve"
)

func TestHandleToolCall(t *testing.T) {
	tests := []struct {
		name       string
		req        gosolve.ToolRequest
		wantString string
		wantError  string
	}{
		{
			name:       "solve",
			req:        gosolve.ToolRequest{Tool: "solve", Params: map[string]interface{}{"latex": "x^{2}+5x+6=0"}},
			wantString: "-2, -3",
		},
		{
			name:       "solve with mode",
			req:        gosolve.ToolRequest{Tool: "solve", Params: map[string]interface{}{"latex": "x^{2}", "mode": "diff"}},
			wantString: "2x",
		},
		{
			name:      "solve with unknown mode",
			req:       gosolve.ToolRequest{Tool: "solve", Params: map[string]interface{}{"latex": "x", "mode": "plot"}},
			wantError: `invalid mode: "plot"`,
		},
		{
			name:      "non-string mode",
			req:       gosolve.ToolRequest{Tool: "solve", Params: map[string]interface{}{"latex": "x", "mode": 5.0}},
			wantError: "param mode must be a string",
		},
		{
			name:      "missing latex",
			req:       gosolve.ToolRequest{Tool: "differentiate", Params: map[string]interface{}{}},
			wantError: "missing param: latex",
		},
		{
			name:       "differentiate",
			req:        gosolve.ToolRequest{Tool: "differentiate", Params: map[string]interface{}{"latex": `\sin(x)`}},
			wantString: `\cos(x)`,
		},
		{
			name:       "integrate",
			req:        gosolve.ToolRequest{Tool: "integrate", Params: map[string]interface{}{"latex": "x"}},
			wantString: `\frac{1}{2} x^{2} + C`,
		},
		{
			name:       "factorize equation",
			req:        gosolve.ToolRequest{Tool: "factorize", Params: map[string]interface{}{"latex": "x^{2} - 4 = 0"}},
			wantString: "(x - 2)(x + 2)",
		},
		{
			name:       "normalize",
			req:        gosolve.ToolRequest{Tool: "normalize", Params: map[string]interface{}{"latex": "2x"}},
			wantString: "2*x",
		},
		{
			name:       "detect variable",
			req:        gosolve.ToolRequest{Tool: "detect_variable", Params: map[string]interface{}{"latex": `\theta^{2} - 1`}},
			wantString: "theta",
		},
		{
			name:       "coefficients",
			req:        gosolve.ToolRequest{Tool: "coefficients", Params: map[string]interface{}{"latex": "3x^{2} - 2x + 1"}},
			wantString: "a=3, b=-2, c=1",
		},
		{
			name:      "coefficients of unparsable input",
			req:       gosolve.ToolRequest{Tool: "coefficients", Params: map[string]interface{}{"latex": "x + "}},
			wantError: "parse error",
		},
		{
			name:      "solve error outcome",
			req:       gosolve.ToolRequest{Tool: "solve", Params: map[string]interface{}{"latex": "x + = 1"}},
			wantError: "Error processing expression",
		},
		{
			name:      "unknown tool",
			req:       gosolve.ToolRequest{Tool: "plot"},
			wantError: "unknown tool: plot",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := gosolve.HandleToolCall(tt.req)
			if tt.wantError != "" {
				assert.Contains(t, resp.Error, tt.wantError)
				return
			}
			assert.Empty(t, resp.Error)
			assert.Equal(t, tt.wantString, resp.String)
		})
	}
}

func TestHandleToolCall_MCPSpec(t *testing.T) {
	resp := gosolve.HandleToolCall(gosolve.ToolRequest{Tool: "mcp_spec"})
	require.Empty(t, resp.Error)

	raw, ok := resp.Result.(string)
	require.True(t, ok)
	var spec struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &spec))

	names := make([]string, 0, len(spec.Tools))
	for _, tool := range spec.Tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{
		"solve", "differentiate", "integrate", "factorize",
		"normalize", "detect_variable", "coefficients", "mcp_spec",
	}, names)
}
