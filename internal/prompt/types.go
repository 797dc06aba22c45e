package prompt

// GlossaryEntry is a word-level translation pair.
type GlossaryEntry struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Example is a sentence-level translation pair shown to the model as a
// few-shot demonstration.
type Example struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Languages names both sides of the translation direction. Source and
// Target are used in prose, the labels prefix sentences in listings.
type Languages struct {
	Source      string
	SourceLabel string
	Target      string
	TargetLabel string
}

// DefaultLanguages is Bengali to Sylheti.
func DefaultLanguages() Languages {
	return Languages{
		Source:      "Bengali (Bangla)",
		SourceLabel: "Bangla",
		Target:      "Sylheti",
		TargetLabel: "Sylheti",
	}
}

// DialectToLanguage is the zero-shot direction from a Bengali dialect to a
// standard language, e.g. Sylheti to English.
func DialectToLanguage(dialect, language string) Languages {
	return Languages{
		Source:      dialect + " dialect of Bengali",
		SourceLabel: dialect,
		Target:      language,
		TargetLabel: language,
	}
}
