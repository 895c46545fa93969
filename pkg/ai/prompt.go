package ai

import "fmt"

const analysisPromptTemplate = `Summarisation:
- Provide a 1-paragraph summary of the following discussion.
- List the main topics discussed.
- Specify any actions agreed upon.

Metrics:
- Calculate the overall ratio of talk time between the speakers. Express this as a ratio (e.g., Speaker A:Speaker B = 2:1).

Feedback:
- Identify aspects of the call that went well.
- Suggest improvements for the next call.

Discussion:
%s
`

// BuildAnalysisPrompt wraps a transcript in the call-review instructions
func BuildAnalysisPrompt(transcript string) string {
	return fmt.Sprintf(analysisPromptTemplate, transcript)
}
