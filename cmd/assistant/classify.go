package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"desktop-assistant/internal/intent"
	"desktop-assistant/pkg/httpproxy"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <utterance>",
		Short: "Classify an utterance and print the parsed decision",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runClassify,
	}
	cmd.Flags().Bool("raw", false, "print the raw classifier output as well")
	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	showRaw, _ := cmd.Flags().GetBool("raw")

	logger := newLogger(cfg)
	httpClient, err := httpproxy.NewClient(cfg.LLM.Proxy)
	if err != nil {
		return fmt.Errorf("proxy: %w", err)
	}
	cls, err := newClassifier(cfg, httpClient, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	utterance := strings.Join(args, " ")
	out := cmd.OutOrStdout()

	if showRaw {
		raw, err := cls.Classify(ctx, utterance, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "raw: %s\n", raw)
		printDecision(cmd, intent.Parse(raw))
		return nil
	}

	decision, err := cls.Decide(ctx, utterance, nil)
	if err != nil {
		return err
	}
	printDecision(cmd, decision)
	return nil
}

func printDecision(cmd *cobra.Command, d intent.Decision) {
	out := cmd.OutOrStdout()
	if d.Empty() {
		fmt.Fprintln(out, "(no actionable intent)")
		return
	}
	for i, it := range d {
		fmt.Fprintf(out, "%d. %-15s %s\n", i+1, it.Category, it.Payload)
	}
}
