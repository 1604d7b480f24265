package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/repify/repify/script"
	"github.com/spf13/cobra"
)

var errTopicRequired = errors.New("topic is required")

type scriptWriter interface {
	Generate(ctx context.Context, topic string) script.Result
}

var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Generate one video script from the command line",
	Long:  `Write a viral short-form video script about the given topic and print it.`,
	Example: `  repify generate "How to start a coffee shop"
  repify generate --provider openai real estate tips`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		if strings.TrimSpace(topic) == "" {
			return errTopicRequired
		}

		cfg := appConfig
		if err := applyLLMFlags(cmd, cfg); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		generator, err := newGenerator(ctx, cfg)
		if err != nil {
			return err
		}

		return runGenerate(ctx, generator, topic, cmd.OutOrStdout())
	},
}

// runGenerate prints the script, or returns the user-facing failure message
func runGenerate(ctx context.Context, writer scriptWriter, topic string, out io.Writer) error {
	if strings.TrimSpace(topic) == "" {
		return errTopicRequired
	}

	result := writer.Generate(ctx, topic)
	if result.Failed() {
		return errors.New(result.Error)
	}

	_, err := fmt.Fprintln(out, result.Script)
	return err
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addLLMFlags(generateCmd)
}
