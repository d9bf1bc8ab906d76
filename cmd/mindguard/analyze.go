package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mindguard/internal/export"
	"mindguard/internal/mood"
	"mindguard/internal/usecases"
)

var (
	analyzeJSON   bool
	analyzeExport bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Score text and print its mood",
	Long: `Scores each argument as one submission. With no arguments every
non-blank line of stdin is a submission.

Example:
  mindguard analyze "What a wonderful day" "I feel tired"
  cat notes.txt | mindguard analyze --json`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	session, err := buildSession(cfg, logger, noDelay)
	if err != nil {
		return err
	}

	texts := args
	if len(texts) == 0 {
		texts, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, text := range texts {
		res, err := session.Analyze(text)
		if err != nil {
			logger.Warn("skipping submission", zap.Error(err))
			continue
		}
		if !analyzeJSON {
			printResult(out, text, res)
		}
	}

	if analyzeJSON {
		if err := export.WriteJSON(out, session.Snapshot()); err != nil {
			return err
		}
	} else {
		printHistory(out, session)
	}

	if analyzeExport {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		dest, err := exportSnapshot(ctx, cfg, logger, session.Snapshot())
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "exported to %s\n", dest)
	}
	return nil
}

func printResult(w io.Writer, text string, res usecases.AnalysisResult) {
	fmt.Fprintf(w, "%s %-13s score %3d  %s\n", res.Mood.Emoji, res.Mood.Label, res.Sentiment.Score, truncate(text, 40))
	fmt.Fprintf(w, "   %s\n", res.Suggestion)
	if len(res.Sentiment.Words) > 0 {
		fmt.Fprintf(w, "   words: %s\n", strings.Join(res.Sentiment.Words, ", "))
	}
}

func printHistory(w io.Writer, session *usecases.Session) {
	fmt.Fprintln(w, "\nDaily average")
	for _, agg := range session.History() {
		fmt.Fprintf(w, "  %-7s %5.2f  %-13s (%d)\n",
			agg.DateKey, agg.AverageScore, mood.LabelFloat(agg.AverageScore), agg.EntryCount)
	}
}

// readLines returns the trimmed non-blank lines of r. Lines have no length limit.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
