package tools

import (
	"context"
	"fmt"
	"strings"

	"sokratik/internal/llm"
)

const analysisDegraded = "Could not perform code analysis at this moment."

const analysisTemperature = 0.3

// AnalyzeCode reviews a pasted Python snippet and returns high-level
// feedback without fixing the code. Degrades to a fixed sentence on
// provider failure.
func (r *Router) AnalyzeCode(ctx context.Context, snippet string) string {
	prompt := fmt.Sprintf(
		"You are a Python code analysis agent. Review the following Python code snippet "+
			"and provide concise, high-level feedback on potential issues, errors, or areas for improvement. "+
			"Do NOT fix the code or provide corrected code. Focus on pointing out where the user should look or what they should consider. "+
			"If the code looks reasonable for a beginner, provide encouraging feedback. "+
			"Code:\n```python\n%s\n```",
		snippet,
	)

	ctx = llm.WithPurpose(ctx, "code-analysis")
	return r.callTool(ctx, prompt, analysisTemperature, analysisDegraded)
}

// callTool sends one single-message request at the tool's temperature and
// returns the degradation sentence on any failure or blank output.
func (r *Router) callTool(ctx context.Context, prompt string, temperature float64, degraded string) string {
	resp, err := r.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   1024,
		Temperature: temperature,
	})
	if err != nil {
		return degraded
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return degraded
	}
	return text
}
