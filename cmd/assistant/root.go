package main

import (
	"github.com/spf13/cobra"

	"desktop-assistant/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "assistant",
		Short: "Voice/text desktop assistant",
		Long: `A desktop assistant that classifies each utterance into intents and
dispatches them to chat, realtime search, automation and image generation.

Examples:
  assistant run
  assistant classify "open chrome and tell me a joke"
  assistant transcript --last 20`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "path to config.yaml")
	root.PersistentFlags().String("env", ".env", "path to .env file")

	root.AddCommand(
		newRunCmd(),
		newClassifyCmd(),
		newTranscriptCmd(),
	)
	return root
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env")
	return config.Load(config.Options{ConfigFile: configFile, EnvFile: envFile})
}
