package respond

import (
	"fmt"
	"strings"
)

// chatSystemPrompt builds the system instructions for open-ended chat,
// embedding whatever official context the retriever found.
func chatSystemPrompt(context []string) string {
	contextBlock := "No specific official records found for this query."
	if len(context) > 0 {
		contextBlock = strings.Join(context, "\n")
	}

	return fmt.Sprintf(`You are the Sierra Leone Government's Truth Engine, an AI assistant designed to fight misinformation and help citizens.

Your role:
- Verify information against official sources
- Detect and warn about scams
- Provide accurate government information
- Be professional, helpful, and trustworthy

Context from knowledge base:
%s

Always cite official sources when possible.`, contextBlock)
}

// verdictSystemPrompt asks a provider for the structured verification
// shape. The reply is parsed by llm.ParseStructuredVerdict.
func verdictSystemPrompt(context []string) string {
	contextBlock := "No specific official records found."
	if len(context) > 0 {
		contextBlock = strings.Join(context, "\n")
	}

	return fmt.Sprintf(`You are the Sierra Leone Government's Truth Engine.
Analyze the user's claim against the provided CONTEXT.
Return ONLY a JSON object with the following format:
{
    "status": "true" | "false" | "unverified",
    "color": "green" | "red" | "yellow",
    "message": "A short explanation (max 2 sentences).",
    "official_source": "Cite the source if available, else null"
}

Rules:
- "true" (green): Claim matches context.
- "false" (red): Claim contradicts context or is a known scam.
- "unverified" (yellow): No info in context.

CONTEXT:
%s`, contextBlock)
}
