package prompt

import (
	"fmt"
	"strings"
)

// Method selects how a translation prompt is built.
type Method string

const (
	MethodZeroShot Method = "zero-shot"
	MethodFewShot  Method = "few-shot"
)

// ParseMethod accepts the method names used on the command line and in
// result file names, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero-shot", "zeroshot", "zero":
		return MethodZeroShot, nil
	case "few-shot", "fewshot", "few":
		return MethodFewShot, nil
	}
	return "", fmt.Errorf("unknown prompt method %q (use zero-shot or few-shot)", s)
}

// Title is the method name as it appears in result file names.
func (m Method) Title() string {
	if m == MethodZeroShot {
		return "Zero-Shot"
	}
	return "Few-Shot"
}

// ZeroShot returns the system and user prompt for translating sentence
// without examples or glossary.
func ZeroShot(lang Languages, sentence string) (system, user string) {
	system = fmt.Sprintf(`You are an expert translator from %[1]s to %[2]s.
Follow these guidelines for translation:
1. Preserve the original meaning and intent of the %[3]s sentence
2. Use appropriate vocabulary and grammar patterns
3. Respect idioms and cultural expressions
4. Maintain the tone and register of the original sentence

Translate the %[3]s text to natural, fluent %[2]s. Provide the translation in %[2]s without any additional commentary or explanation or artifacts`,
		lang.Source, lang.Target, lang.SourceLabel)
	user = fmt.Sprintf("%s: %s\n%s:", lang.SourceLabel, sentence, lang.TargetLabel)
	return system, user
}

// FewShotSystem is the system instruction sent alongside a composed
// few-shot prompt, which carries its own guidelines.
func FewShotSystem(lang Languages) string {
	return fmt.Sprintf("You are an expert translator from %s to %s. Respond with only the %s translation of the final sentence, without commentary.",
		lang.Source, lang.Target, lang.TargetLabel)
}
