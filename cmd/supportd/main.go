package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0"
	configPath string // overridable via --config flag
)

func main() {
	root := &cobra.Command{
		Use:     "supportd",
		Short:   "Rule-based customer support agent pipeline",
		Long:    "supportd classifies customer messages by keyword, tags priority and sentiment, decides escalations and picks canned replies. Serve it over REST, feed it from Kafka, or chat with it locally.",
		Version: version,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (optional)")

	root.AddCommand(serveCmd())
	root.AddCommand(chatCmd())
	root.AddCommand(produceCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
