package config

// DefaultPrompt is printed before each command when prompting is enabled.
const DefaultPrompt = "> "

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat writes one JSON envelope per response instead of text boards
	JSONFormat bool

	// Color renders boards with lipgloss styling
	Color bool

	// Prompt is written before reading each command; empty disables it
	Prompt string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Prompt: DefaultPrompt,
	}
}
