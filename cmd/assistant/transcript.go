package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"desktop-assistant/internal/session/repository"
	"desktop-assistant/pkg/response"
)

func newTranscriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Print the stored conversation",
		Args:  cobra.NoArgs,
		RunE:  runTranscript,
	}
	cmd.Flags().IntP("last", "n", 0, "only print the last N entries")
	return cmd
}

func runTranscript(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	last, _ := cmd.Flags().GetInt("last")

	repo, err := newRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, err := repo.List(cmd.Context(), repository.ListOptions{Last: last})
	if err != nil {
		return fmt.Errorf("list transcript: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "%s %-9s : %s\n", response.DateTime(e.Timestamp), e.Role, e.Content)
	}
	return nil
}
