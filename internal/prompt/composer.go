package prompt

import (
	"bytes"
	"fmt"
	"text/template"
)

const builtinTemplate = `You are an expert translator from {{.Lang.Source}} to {{.Lang.Target}}.
Follow these guidelines for translation:
1. Preserve the original meaning and intent of the {{.Lang.SourceLabel}} sentence
2. Use appropriate {{.Lang.Target}} vocabulary and grammar patterns
3. Respect idioms and cultural expressions specific to {{.Lang.Target}}
4. Follow the few-shot examples provided below
5. Utilize the glossary entries when appropriate
6. Maintain the tone and register of the original sentence

Translate the {{.Lang.SourceLabel}} text to natural, fluent {{.Lang.Target}}.

Few-shot examples:
{{range $i, $ex := .Examples}}{{inc $i}}. {{$.Lang.SourceLabel}}: {{$ex.Source}}
   {{$.Lang.TargetLabel}}: {{$ex.Target}}

{{end}}
Glossary:
{{range $i, $g := .Glossary}}{{inc $i}}. {{$.Lang.SourceLabel}}: {{$g.Source}} → {{$.Lang.TargetLabel}}: {{$g.Target}}
{{end}}

{{.Lang.SourceLabel}}: {{.Sentence}}
{{.Lang.TargetLabel}}:`

// TemplateData is what a prompt template is executed against.
type TemplateData struct {
	Lang     Languages
	Sentence string
	Examples []Example
	Glossary []GlossaryEntry
}

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// Composer renders prompts for one translation direction.
type Composer struct {
	lang Languages
	tmpl *template.Template
}

// NewComposer returns a composer using the builtin prompt layout.
func NewComposer(lang Languages) *Composer {
	return &Composer{
		lang: lang,
		tmpl: template.Must(template.New("prompt").Funcs(templateFuncs).Parse(builtinTemplate)),
	}
}

// NewTemplateComposer returns a composer rendering body instead of the
// builtin layout. The template is parsed and dry-run against sample data so
// mistakes surface here and not per sentence.
func NewTemplateComposer(lang Languages, body string) (*Composer, error) {
	tmpl, err := template.New("prompt").Funcs(templateFuncs).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}
	c := &Composer{lang: lang, tmpl: tmpl}
	sample := []Example{{Source: "x", Target: "y"}}
	if _, err := c.Render("x", sample, []GlossaryEntry{{Source: "x", Target: "y"}}); err != nil {
		return nil, err
	}
	return c, nil
}

// Languages returns the translation direction the composer was built for.
func (c *Composer) Languages() Languages {
	return c.lang
}

// Render formats the preamble, the numbered examples, the numbered glossary
// and the sentence to translate into one prompt. Empty fields are rendered
// as empty strings.
func (c *Composer) Render(sentence string, examples []Example, glossary []GlossaryEntry) (string, error) {
	var buf bytes.Buffer
	err := c.tmpl.Execute(&buf, TemplateData{
		Lang:     c.lang,
		Sentence: sentence,
		Examples: examples,
		Glossary: glossary,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

var defaultComposer = NewComposer(DefaultLanguages())

// Compose renders a Bengali to Sylheti prompt with the builtin layout.
func Compose(sentence string, examples []Example, glossary []GlossaryEntry) string {
	out, err := defaultComposer.Render(sentence, examples, glossary)
	if err != nil {
		// The builtin template only touches fields TemplateData always has.
		panic(err)
	}
	return out
}
