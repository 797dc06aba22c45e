package cli

import (
	"codeberg.org/snonux/dialectprompt/internal/prompt"
	"codeberg.org/snonux/dialectprompt/internal/translation"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Verbose    bool
	ListModels bool
	Archive    bool

	// Prompt flags
	Input       string
	InputFile   string
	Glossary    string
	FewShot     string
	Examples    int
	Output      string
	Seed        int64
	Method      string
	Template    string
	CountTokens bool

	// Translation flags
	Translate bool
	Provider  string
	Model     string

	// Batch flags
	BatchFile string
	OutputDir string
	Workers   int
	RPS       float64
	SQLite    string
	Dialect   string
	Split     string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Examples:  prompt.DefaultExampleCount,
		Method:    string(prompt.MethodFewShot),
		Provider:  translation.ProviderOpenAI,
		OutputDir: "results",
		Workers:   4,
		RPS:       2,
		Dialect:   "Sylhet",
		Split:     "Test",
	}
}

// SeedSet reports whether a selection seed was given. Zero means "seed from
// the clock".
func (f *Flags) SeedSet() bool {
	return f.Seed != 0
}
