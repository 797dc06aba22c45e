package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/dialectprompt/internal"
	"codeberg.org/snonux/dialectprompt/internal/translation"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dialectprompt [sentence]",
		Short: "Few-shot prompt builder for Bengali to Sylheti translation",
		Long: `dialectprompt builds few-shot translation prompts for Bengali (Bangla) to
Sylheti. For each sentence it keeps the glossary entries the sentence uses,
picks examples from a parallel corpus by word overlap plus a random share,
and renders them into one prompt for a language model.

Examples:
  dialectprompt -g glossary.csv -f train.json "আমি ভাত খাই"
  dialectprompt -g glossary.csv -f train.json -i "আমার বই আছে" -o prompt.txt
  dialectprompt --method zero-shot --batch "Sylhet Test Translation.json"
  dialectprompt -g glossary.csv -f train.json --translate "আমি ভাত খাই"
  dialectprompt -g glossary.csv -f train.json --batch test.json --sqlite runs.db`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.dialectprompt.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log debug output to stderr")

	// Prompt flags
	cmd.Flags().StringVarP(&flags.Input, "input", "i", "", "Sentence to translate (alternative to the argument)")
	cmd.Flags().StringVar(&flags.InputFile, "input-file", "", "Read the sentence from this file")
	cmd.Flags().StringVarP(&flags.Glossary, "glossary", "g", "", "Glossary CSV with ben and syl columns")
	cmd.Flags().StringVarP(&flags.FewShot, "fewshot", "f", "", "Example pool (JSON or YAML)")
	cmd.Flags().IntVarP(&flags.Examples, "examples", "e", flags.Examples, "Number of few-shot examples")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write the prompt to this file instead of stdout")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Seed for example selection (0 seeds from the clock)")
	cmd.Flags().StringVar(&flags.Method, "method", flags.Method, "Prompt method: few-shot or zero-shot")
	cmd.Flags().StringVar(&flags.Template, "template", "", "Prompt template file (text/template) replacing the builtin layout")
	cmd.Flags().BoolVar(&flags.CountTokens, "count-tokens", false, "Print the prompt's token count to stderr")

	// Translation flags
	cmd.Flags().BoolVar(&flags.Translate, "translate", false, "Send the prompt to the model and print the translation")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model name (default depends on the provider)")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List chat models available for the current API key")

	// Batch flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate every sentence of this file (text, JSON or YAML)")
	cmd.Flags().StringVar(&flags.OutputDir, "output-dir", flags.OutputDir, "Directory for batch result files")
	cmd.Flags().IntVar(&flags.Workers, "workers", flags.Workers, "Concurrent translation requests in batch mode")
	cmd.Flags().Float64Var(&flags.RPS, "rps", flags.RPS, "Maximum translation requests per second in batch mode")
	cmd.Flags().StringVar(&flags.SQLite, "sqlite", "", "Also store batch results in this SQLite database")
	cmd.Flags().StringVar(&flags.Dialect, "dialect", flags.Dialect, "Dialect name used in result file names")
	cmd.Flags().StringVar(&flags.Split, "split", flags.Split, "Data split name used in result file names")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the batch output directory to archive/ and exit")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("prompt.glossary", cmd.Flags().Lookup("glossary"))
	viper.BindPFlag("prompt.fewshot", cmd.Flags().Lookup("fewshot"))
	viper.BindPFlag("prompt.examples", cmd.Flags().Lookup("examples"))
	viper.BindPFlag("prompt.method", cmd.Flags().Lookup("method"))
	viper.BindPFlag("prompt.template", cmd.Flags().Lookup("template"))
	viper.BindPFlag("prompt.seed", cmd.Flags().Lookup("seed"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translation.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("batch.output_dir", cmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
	viper.BindPFlag("batch.rps", cmd.Flags().Lookup("rps"))
	viper.BindPFlag("batch.sqlite", cmd.Flags().Lookup("sqlite"))
	viper.BindPFlag("batch.dialect", cmd.Flags().Lookup("dialect"))
	viper.BindPFlag("batch.split", cmd.Flags().Lookup("split"))
}

// ApplyConfig copies values from viper (config file, environment, flags)
// into flags, so settings from .dialectprompt.yaml apply to flags the user
// did not pass.
func ApplyConfig(flags *Flags) {
	flags.Glossary = viper.GetString("prompt.glossary")
	flags.FewShot = viper.GetString("prompt.fewshot")
	flags.Examples = viper.GetInt("prompt.examples")
	flags.Method = viper.GetString("prompt.method")
	flags.Template = viper.GetString("prompt.template")
	flags.Seed = viper.GetInt64("prompt.seed")
	flags.Provider = viper.GetString("translation.provider")
	flags.Model = viper.GetString("translation.model")
	flags.OutputDir = viper.GetString("batch.output_dir")
	flags.Workers = viper.GetInt("batch.workers")
	flags.RPS = viper.GetFloat64("batch.rps")
	flags.SQLite = viper.GetString("batch.sqlite")
	flags.Dialect = viper.GetString("batch.dialect")
	flags.Split = viper.GetString("batch.split")
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".dialectprompt" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dialectprompt")
	}

	// Environment variables
	viper.SetEnvPrefix("DIALECTPROMPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.gemini_key")
}

// GetAPIKey returns the key for the named provider.
func GetAPIKey(provider string) string {
	if provider == translation.ProviderGemini {
		return GetGeminiKey()
	}
	return GetOpenAIKey()
}
