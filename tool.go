package gosolve

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Tools whose responses depend only on their params and may be cached.
var CacheableTools = map[string]bool{
	"solve": true, "differentiate": true, "integrate": true, "factorize": true,
}

// HandleToolCall runs a tool on the default solver.
func HandleToolCall(req ToolRequest) ToolResponse { return defaultSolver.HandleToolCall(req) }

func (s *Solver) HandleToolCall(req ToolRequest) ToolResponse {
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		str, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return str, nil
	}
	respond := func(res Result) ToolResponse {
		resp := ToolResponse{Result: res, LaTeX: res.LaTeX, String: strings.Join(res.Lines(), ", ")}
		if res.Outcome == OutcomeError {
			resp.Error = res.Error
		}
		return resp
	}

	switch req.Tool {
	case "solve", "differentiate", "integrate":
		latex, err := getString("latex")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		mode := Mode(req.Tool)
		if req.Tool == "solve" {
			if _, ok := req.Params["mode"]; ok {
				name, err := getString("mode")
				if err != nil {
					return ToolResponse{Error: err.Error()}
				}
				if mode, err = ParseMode(name); err != nil {
					return ToolResponse{Error: err.Error()}
				}
			}
		}
		return respond(s.SolveEquation(latex, mode))

	case "factorize":
		latex, err := getString("latex")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		normalized := Normalize(latex)
		factored, err := s.Factorize(Classify(normalized).Reduce(), DetectVariable(normalized))
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: factored, LaTeX: factored, String: factored}

	case "normalize":
		latex, err := getString("latex")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		normalized := Normalize(latex)
		return ToolResponse{Result: normalized, String: normalized}

	case "detect_variable":
		latex, err := getString("latex")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		v := DetectVariable(Normalize(latex))
		return ToolResponse{Result: v, String: v}

	case "coefficients":
		latex, err := getString("latex")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		normalized := Normalize(latex)
		v := DetectVariable(normalized)
		c, err := s.ExtractCoefficients(Classify(normalized).Reduce(), v)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{
			Result: map[string]interface{}{"variable": v, "a": c.A, "b": c.B, "c": c.C, "degree": c.Classify()},
			String: fmt.Sprintf("a=%g, b=%g, c=%g", c.A, c.B, c.C),
		}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}
	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	latex := map[string]string{"latex": "string"}
	tools := []map[string]interface{}{
		ts("solve", "Solve an equation, or factorize an expression. Optional mode: solve, differentiate, integrate", []string{"latex"}, map[string]string{"latex": "string", "mode": "string"}),
		ts("differentiate", "Derivative with respect to the detected variable", []string{"latex"}, latex),
		ts("integrate", "Rule-based antiderivative, falling back to integral notation", []string{"latex"}, latex),
		ts("factorize", "Factor a quadratic into linear factors", []string{"latex"}, latex),
		ts("normalize", "Convert LaTeX to plain engine text", []string{"latex"}, latex),
		ts("detect_variable", "Return the unknown of an expression", []string{"latex"}, latex),
		ts("coefficients", "Quadratic coefficients a, b, c of left minus right", []string{"latex"}, latex),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
