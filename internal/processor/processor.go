package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"codeberg.org/snonux/dialectprompt/internal/batch"
	"codeberg.org/snonux/dialectprompt/internal/cli"
	"codeberg.org/snonux/dialectprompt/internal/dataset"
	"codeberg.org/snonux/dialectprompt/internal/prompt"
	"codeberg.org/snonux/dialectprompt/internal/results"
	"codeberg.org/snonux/dialectprompt/internal/tokens"
	"codeberg.org/snonux/dialectprompt/internal/translation"
)

// ErrNoSentence is returned when neither an argument nor --input supplies a
// sentence.
var ErrNoSentence = errors.New("no sentence given")

// Prompt is the system instruction and user message for one sentence.
type Prompt struct {
	System string
	User   string
	// Build is set for few-shot prompts.
	Build *prompt.Result
}

// Text is the prompt as written to stdout or --output.
func (p Prompt) Text() string {
	if p.Build != nil {
		return p.User
	}
	return p.System + "\n\n" + p.User
}

// Processor handles prompt building and translation for the CLI
type Processor struct {
	flags      *cli.Flags
	logger     *zap.Logger
	out        io.Writer
	errOut     io.Writer
	method     prompt.Method
	lang       prompt.Languages
	builder    *prompt.Builder
	translator translation.Translator
	cache      *translation.Cache
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTranslator sets the translator instead of creating one from the
// provider flags on first use.
func WithTranslator(t translation.Translator) Option {
	return func(p *Processor) { p.translator = t }
}

// WithOutput redirects what would go to stdout and stderr.
func WithOutput(out, errOut io.Writer) Option {
	return func(p *Processor) {
		p.out = out
		p.errOut = errOut
	}
}

// NewProcessor validates flags and loads the glossary and example pool the
// few-shot method needs.
func NewProcessor(flags *cli.Flags, opts ...Option) (*Processor, error) {
	p := &Processor{
		flags:  flags,
		logger: zap.NewNop(),
		out:    os.Stdout,
		errOut: os.Stderr,
		cache:  translation.NewCache(),
	}
	for _, opt := range opts {
		opt(p)
	}

	method, err := prompt.ParseMethod(flags.Method)
	if err != nil {
		return nil, err
	}
	p.method = method
	p.lang = languagesFromConfig(method)
	if flags.Examples < 0 {
		return nil, fmt.Errorf("--examples must not be negative, got %d", flags.Examples)
	}

	if method == prompt.MethodFewShot {
		if err := p.loadBuilder(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Zero-shot prompts translate a dialect sentence to a standard language and
// read it from the dialect field of the test split.
const (
	zeroShotDialect  = "Sylheti"
	zeroShotLanguage = "English"
	dialectField     = "sylhet_bangla_speech"
	languageField    = "english_speech"
)

// languagesFromConfig starts from the method's default direction, Bengali to
// Sylheti for few-shot and Sylheti to English for zero-shot, and overrides
// it with the prompt.source, prompt.source_label, prompt.target and
// prompt.target_label config keys.
func languagesFromConfig(method prompt.Method) prompt.Languages {
	lang := prompt.DefaultLanguages()
	if method == prompt.MethodZeroShot {
		lang = prompt.DialectToLanguage(zeroShotDialect, zeroShotLanguage)
	}
	for key, field := range map[string]*string{
		"prompt.source":       &lang.Source,
		"prompt.source_label": &lang.SourceLabel,
		"prompt.target":       &lang.Target,
		"prompt.target_label": &lang.TargetLabel,
	} {
		if v := viper.GetString(key); v != "" {
			*field = v
		}
	}
	return lang
}

func (p *Processor) loadBuilder() error {
	if p.flags.Glossary == "" || p.flags.FewShot == "" {
		return fmt.Errorf("few-shot prompts need --glossary and --fewshot")
	}

	glossary, err := dataset.LoadGlossary(p.flags.Glossary, glossaryColumns())
	if err != nil {
		return err
	}
	examples, err := dataset.LoadExamples(p.flags.FewShot, p.exampleFields())
	if err != nil {
		return err
	}
	p.logger.Info("loaded prompt data",
		zap.Int("glossary_entries", len(glossary)),
		zap.Int("examples", len(examples)))

	composer := prompt.NewComposer(p.lang)
	if p.flags.Template != "" {
		body, err := os.ReadFile(p.flags.Template)
		if err != nil {
			return fmt.Errorf("failed to read prompt template: %w", err)
		}
		if composer, err = prompt.NewTemplateComposer(p.lang, string(body)); err != nil {
			return err
		}
	}

	selector := prompt.NewSelector(nil)
	if p.flags.SeedSet() {
		selector = prompt.NewSeededSelector(p.flags.Seed)
	}

	p.builder = prompt.NewBuilder(glossary, examples,
		prompt.WithSelector(selector),
		prompt.WithComposer(composer),
		prompt.WithLogger(p.logger))
	return nil
}

func glossaryColumns() dataset.GlossaryColumns {
	cols := dataset.DefaultGlossaryColumns()
	if v := viper.GetString("dataset.glossary_source"); v != "" {
		cols.Source = v
	}
	if v := viper.GetString("dataset.glossary_target"); v != "" {
		cols.Target = v
	}
	return cols
}

// exampleFields names the sentence and reference fields of example and
// batch records, overridable with the dataset.source_field and
// dataset.target_field config keys.
func (p *Processor) exampleFields() dataset.ExampleFields {
	fields := dataset.DefaultExampleFields()
	if p.method == prompt.MethodZeroShot {
		fields = dataset.ExampleFields{Source: dialectField, Target: languageField}
	}
	if v := viper.GetString("dataset.source_field"); v != "" {
		fields.Source = v
	}
	if v := viper.GetString("dataset.target_field"); v != "" {
		fields.Target = v
	}
	return fields
}

// ReadSentence returns the sentence given with --input, read from
// --input-file, or passed as the first argument, in that order.
func (p *Processor) ReadSentence(args []string) (string, error) {
	var sentence string
	switch {
	case p.flags.Input != "":
		sentence = p.flags.Input
	case p.flags.InputFile != "":
		data, err := os.ReadFile(p.flags.InputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		sentence = string(data)
	case len(args) > 0:
		sentence = args[0]
	}

	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return "", ErrNoSentence
	}
	return sentence, nil
}

// BuildPrompt builds the prompt for sentence with the configured method.
func (p *Processor) BuildPrompt(sentence string) (Prompt, error) {
	if p.method == prompt.MethodZeroShot {
		system, user := prompt.ZeroShot(p.lang, sentence)
		return Prompt{System: system, User: user}, nil
	}

	res, err := p.builder.Build(sentence, p.flags.Examples)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{
		System: prompt.FewShotSystem(p.lang),
		User:   res.Prompt,
		Build:  res,
	}, nil
}

// ProcessSingleSentence writes the prompt for sentence to --output or
// stdout. With --translate it prints the model's translation instead.
func (p *Processor) ProcessSingleSentence(ctx context.Context, sentence string) error {
	pr, err := p.BuildPrompt(sentence)
	if err != nil {
		return err
	}

	if p.flags.CountTokens {
		p.reportTokens(pr)
	}

	if p.flags.Output != "" {
		if err := writeFile(p.flags.Output, pr.Text()); err != nil {
			return err
		}
		p.logger.Info("prompt written", zap.String("path", p.flags.Output))
	}

	if !p.flags.Translate {
		if p.flags.Output == "" {
			fmt.Fprint(p.out, pr.Text())
			if !strings.HasSuffix(pr.Text(), "\n") {
				fmt.Fprintln(p.out)
			}
		}
		return nil
	}

	tr, err := p.getTranslator(ctx)
	if err != nil {
		return err
	}
	translated, err := tr.Translate(ctx, pr.System, pr.User)
	if err != nil {
		return fmt.Errorf("failed to translate %q: %w", sentence, err)
	}
	fmt.Fprintf(p.out, "%s = %s\n", sentence, translated)

	if p.flags.Output != "" {
		if err := translation.SaveTranslation(TranslationPath(p.flags.Output), sentence, translated); err != nil {
			return err
		}
	}
	return nil
}

// TranslationPath is where a translation is saved next to the prompt written
// to output.
func TranslationPath(output string) string {
	return output + ".translation.txt"
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

func (p *Processor) model() string {
	if p.flags.Model != "" {
		return p.flags.Model
	}
	return translation.DefaultModel(p.flags.Provider)
}

// reportTokens prints the token estimate to stderr. A missing encoding is
// only a warning.
func (p *Processor) reportTokens(pr Prompt) {
	counter := tokens.NewCounter(p.model())
	n, err := counter.CountPrompt(pr.System, pr.User)
	if err != nil {
		p.logger.Warn("could not count tokens", zap.Error(err))
		return
	}
	fmt.Fprintf(p.errOut, "Prompt tokens (%s, %s): %d\n", p.model(), counter.Encoding(), n)
}

func (p *Processor) getTranslator(ctx context.Context) (translation.Translator, error) {
	if p.translator != nil {
		return p.translator, nil
	}

	timeout := viper.GetDuration("translation.timeout")
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	tr, err := translation.NewTranslator(ctx, translation.Config{
		Provider: p.flags.Provider,
		APIKey:   cli.GetAPIKey(p.flags.Provider),
		Model:    p.model(),
		BaseURL:  viper.GetString("translation.base_url"),
		Timeout:  timeout,
	})
	if err != nil {
		return nil, err
	}
	p.translator = tr
	return tr, nil
}

// ProcessBatch translates every sentence of the batch file. Prompts are
// built in file order on this goroutine so a seeded selection is
// reproducible; translations then run on --workers goroutines throttled to
// --rps requests per second. A failing sentence is recorded and the batch
// goes on.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatch(p.flags.BatchFile, p.exampleFields())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("batch file %s has no sentences", p.flags.BatchFile)
	}

	prompts := make([]Prompt, len(entries))
	for i, entry := range entries {
		if prompts[i], err = p.BuildPrompt(entry.Sentence); err != nil {
			return fmt.Errorf("failed to build prompt for %q: %w", entry.Sentence, err)
		}
	}

	tr, err := p.getTranslator(ctx)
	if err != nil {
		return err
	}
	tr = translation.NewBreakerTranslator(tr, translation.DefaultBreakerSettings(), p.logger)

	run := results.Run{
		ID:         uuid.NewString(),
		StartedAt:  time.Now(),
		Translator: tr.Name(),
		Method:     p.method.Title(),
		Source:     p.lang.Source,
		Target:     p.lang.Target,
		Examples:   p.flags.Examples,
	}
	p.logger.Info("starting batch",
		zap.String("run_id", run.ID),
		zap.Int("sentences", len(entries)),
		zap.String("translator", run.Translator))

	out, err := p.translateAll(ctx, tr, entries, prompts)
	if err != nil {
		return err
	}

	path := filepath.Join(p.flags.OutputDir,
		results.FileName(p.flags.Dialect, p.flags.Split, p.lang.TargetLabel, p.method.Title(), p.model()))
	if err := results.WriteJSON(path, out); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Results written to: %s\n", path)

	if p.flags.SQLite != "" {
		if err := p.saveSQLite(ctx, run, out); err != nil {
			return err
		}
		fmt.Fprintf(p.out, "Run %s stored in: %s\n", run.ID, p.flags.SQLite)
	}

	printSummary(p.out, results.Summarize(out))
	return nil
}

func (p *Processor) translateAll(ctx context.Context, tr translation.Translator, entries []batch.SentenceEntry, prompts []Prompt) ([]results.Result, error) {
	limit := rate.Inf
	if p.flags.RPS > 0 {
		limit = rate.Limit(p.flags.RPS)
	}
	limiter := rate.NewLimiter(limit, 1)

	out := make([]results.Result, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, p.flags.Workers))

	for i, entry := range entries {
		out[i] = results.Result{
			Index:     i,
			Sentence:  entry.Sentence,
			Reference: entry.Reference,
			Fields:    entry.Record,
		}
		g.Go(func() error {
			res := &out[i]
			if cached, ok := p.cache.Get(entry.Sentence); ok {
				res.Translation = cached
				res.Cached = true
				return nil
			}
			if err := limiter.Wait(gctx); err != nil {
				return err
			}

			translated, err := tr.Translate(gctx, prompts[i].System, prompts[i].User)
			if err != nil {
				res.Err = err
				p.logger.Warn("translation failed",
					zap.Int("index", i),
					zap.String("sentence", entry.Sentence),
					zap.Error(err))
				return nil
			}
			res.Translation = translated
			p.cache.Add(entry.Sentence, translated)
			p.logger.Debug("translated",
				zap.Int("index", i),
				zap.String("sentence", entry.Sentence),
				zap.String("translation", translated))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}
	p.logger.Debug("batch translated", zap.Int("distinct_sentences", p.cache.Len()))
	return out, nil
}

func (p *Processor) saveSQLite(ctx context.Context, run results.Run, out []results.Result) error {
	store, err := results.OpenSQLite(p.flags.SQLite)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveRun(ctx, run, out)
}

func printSummary(w io.Writer, s results.Summary) {
	fmt.Fprintf(w, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(w, "Total sentences: %d\n", s.Total)
	fmt.Fprintf(w, "Translated: %d\n", s.Translated)
	fmt.Fprintf(w, "From cache: %d\n", s.Cached)
	if s.Failed > 0 {
		fmt.Fprintf(w, "Errors: %d\n", s.Failed)
	}
	fmt.Fprintf(w, "================================\n")
}
