package prompt

import (
	"go.uber.org/zap"
)

// Result is one built prompt together with the inputs that went into it.
type Result struct {
	Prompt   string
	Examples []Example
	Glossary []GlossaryEntry
}

// Builder combines a loaded glossary and example pool into prompts.
type Builder struct {
	glossary []GlossaryEntry
	examples []Example
	selector *Selector
	composer *Composer
	logger   *zap.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithSelector sets the example selector, typically a seeded one.
func WithSelector(s *Selector) BuilderOption {
	return func(b *Builder) { b.selector = s }
}

// WithComposer sets the composer, e.g. for another direction or a custom
// template.
func WithComposer(c *Composer) BuilderOption {
	return func(b *Builder) { b.composer = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder returns a builder over glossary and examples. Neither slice is
// modified.
func NewBuilder(glossary []GlossaryEntry, examples []Example, opts ...BuilderOption) *Builder {
	b := &Builder{
		glossary: glossary,
		examples: examples,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.selector == nil {
		b.selector = NewSelector(nil)
	}
	if b.composer == nil {
		b.composer = NewComposer(DefaultLanguages())
	}
	return b
}

// Languages returns the direction of the builder's composer.
func (b *Builder) Languages() Languages {
	return b.composer.Languages()
}

// Build filters the glossary, selects k examples and renders the prompt for
// sentence. The only error source is a custom template failing to execute.
func (b *Builder) Build(sentence string, k int) (*Result, error) {
	glossary := FilterGlossary(sentence, b.glossary)
	b.logger.Debug("filtered glossary",
		zap.Int("from", len(b.glossary)),
		zap.Int("to", len(glossary)))

	examples := b.selector.Select(sentence, b.examples, k)
	if len(b.examples) <= k {
		b.logger.Debug("using whole example pool",
			zap.Int("available", len(b.examples)),
			zap.Int("requested", k))
	} else {
		b.logger.Debug("selected few-shot examples",
			zap.Int("selected", len(examples)),
			zap.Int("requested", k))
	}

	text, err := b.composer.Render(sentence, examples, glossary)
	if err != nil {
		return nil, err
	}
	return &Result{Prompt: text, Examples: examples, Glossary: glossary}, nil
}
