package summary

// PromptInstruction is the fixed instruction prefixed to every prompt.
// The sanitized selection follows it verbatim.
const PromptInstruction = "Please provide a concise summary of the following text:"

// BuildPrompt wraps the text in the fixed instruction template.
// The result starts with PromptInstruction and ends with the text unmodified.
// Deterministic: equal input always yields equal output.
func BuildPrompt(text string) string {
	return PromptInstruction + "\n\n" + text
}
