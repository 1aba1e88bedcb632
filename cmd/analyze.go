package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/report"
)

const analyzeSystemPrompt = `You are a League of Legends performance analyst. You are given structured
data computed from a match export and a question from the player.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise and actionable.
- Sections with status other than "ok" have no rows; do not speculate about them.

Metrics glossary:
- games: participant rows for the champion after the mode/position filter.
- win_rate: share of those games won, in percent.
- kda: (mean kills + mean assists) / mean deaths, with deaths floored at 1.
- sample: OK for 50+ games, LOW for 20-49, VERY_LOW below 20.
- gold: mean gold earned in lost and won games.
- items: how many times each item filled a slot across the champion's games.`

var (
	analyzeModel  string
	analyzeAPIKey string
	analyzeRender bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <question>",
	Short: "AI-powered grounded analysis of the report (requires ANTHROPIC_API_KEY)",
	Long: `Compute the full report for the configured filters and send it as JSON
context, together with the question, to the Anthropic API. The answer is
streamed to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "claude-haiku-4-5-20251001", "Anthropic model to use")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")
	analyzeCmd.Flags().BoolVar(&analyzeRender, "render", false, "wait for the full answer and render it as markdown")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	s, err := loadSession(cmd.Context(), cfg, true)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if s.filtered.Len() == 0 {
		return fmt.Errorf("no games match mode %q and position %q", s.cfg.GameMode, s.cfg.Position)
	}

	var buf bytes.Buffer
	if err := report.WriteJSON(&buf, s.document(secAll)); err != nil {
		return fmt.Errorf("build context: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n─── AI Analysis ─────────────────────────────────────")
	if analyzeRender {
		var answer strings.Builder
		err = callAnthropic(cmd.Context(), &answer, analyzeAPIKey, analyzeModel, buf.String(), question)
		fmt.Fprint(out, renderMarkdown(answer.String()))
	} else {
		err = callAnthropic(cmd.Context(), out, analyzeAPIKey, analyzeModel, buf.String(), question)
	}
	fmt.Fprintln(out, "\n─────────────────────────────────────────────────────")
	return err
}

// renderMarkdown styles text for the terminal, falling back to the raw text.
func renderMarkdown(text string) string {
	styled, err := glamour.Render(text, "dark")
	if err != nil {
		log.Debug().Err(err).Msg("markdown render failed")
		return text
	}
	return styled
}

// callAnthropic streams a response from the Anthropic API and prints it to w.
func callAnthropic(ctx context.Context, w io.Writer, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(w, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed, check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
