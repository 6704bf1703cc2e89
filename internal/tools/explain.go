package tools

import (
	"context"
	"fmt"

	"sokratik/internal/llm"
)

const explainDegraded = "Could not explain this concept at the moment."

const explainTemperature = 0.2

// Explain answers a definition question directly, breaking the Socratic
// persona on purpose. Runs at the lowest temperature of the four tools.
func (r *Router) Explain(ctx context.Context, query string) string {
	prompt := fmt.Sprintf(
		"You are a helpful Python programming explainer. Explain the following "+
			"Python concept, function, keyword, or code snippet concisely and clearly, "+
			"suitable for a novice programmer. Focus on its purpose and how it's used. "+
			"Do not ask questions. Provide a direct explanation.\n\nQuery: %s",
		query,
	)

	ctx = llm.WithPurpose(ctx, "explanation")
	return r.callTool(ctx, prompt, explainTemperature, explainDegraded)
}
