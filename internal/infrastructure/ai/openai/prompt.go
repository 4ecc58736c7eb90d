package openai

func buildEvaluationPrompt(transcription string) string {
	const maxSnippet = 12000
	snippet := transcription
	if len(snippet) > maxSnippet {
		snippet = snippet[:maxSnippet]
	}

	return `You are an interview evaluator.
Return strict JSON object with keys:
technical_score (number from 1 to 10), communication_score (number from 1 to 10),
problem_solving_score (number from 1 to 10), overall_score (number from 1 to 10),
strengths (array of strings), weaknesses (array of strings),
feedback (string), recommendation ("hire", "no_hire" or "maybe").
No markdown, no extra keys.

Interview transcription:
` + snippet
}
