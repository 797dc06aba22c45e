package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/dialectprompt/internal/archive"
	"codeberg.org/snonux/dialectprompt/internal/cli"
	"codeberg.org/snonux/dialectprompt/internal/models"
	"codeberg.org/snonux/dialectprompt/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
		cli.ApplyConfig(flags)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	logger := cli.NewLogger(flags.Verbose, viper.GetString("log.format"))
	defer logger.Sync()
	ctx := cmd.Context()

	// Handle --archive flag
	if flags.Archive {
		path, err := archive.ArchiveResults(flags.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to archive results: %w", err)
		}
		fmt.Printf("Results directory archived to: %s\n", path)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), viper.GetString("translation.base_url"))
		return lister.ListAvailableModels(ctx, os.Stdout)
	}

	proc, err := processor.NewProcessor(flags, processor.WithLogger(logger))
	if err != nil {
		return err
	}

	if flags.BatchFile != "" {
		return proc.ProcessBatch(ctx)
	}

	sentence, err := proc.ReadSentence(args)
	if err != nil {
		return fmt.Errorf("%w: pass it as an argument or with --input", err)
	}
	return proc.ProcessSingleSentence(ctx, sentence)
}
