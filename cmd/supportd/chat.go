package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/opsdesk/support-agent-pipeline/internal/config"
	"github.com/opsdesk/support-agent-pipeline/internal/coordinator"
	"github.com/opsdesk/support-agent-pipeline/internal/logging"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Run the pipeline interactively against stdin",
		RunE:  runChat,
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// Keep the transcript readable; pipeline logs stay out of the way.
	if err := logging.Setup("warn", cfg.Log.Format); err != nil {
		return err
	}

	coord := coordinator.New(cfg.Rules)
	state := coordinator.NewState(fmt.Sprintf("chat-%d", time.Now().UnixNano()))

	fmt.Println("Type a customer message and press ENTER. Ctrl+D to finish.")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		result := coord.Process(state, text)

		fmt.Printf("[intent=%s priority=%s sentiment=%s tier=%s]\n",
			result.Intent, result.Priority, result.Sentiment, result.CustomerTier)
		if result.Escalated {
			fmt.Printf("[ESCALATED: %s]\n", *result.EscalationReason)
		}
		fmt.Printf("agent> %s\n\n", result.Reply)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stdin error: %w", err)
	}

	report := state.Analytics.Snapshot()
	fmt.Printf("\n%d interactions, %d escalations (%.1f%% escalation rate)\n",
		report.TotalInteractions, report.Escalations, report.EscalationRate)
	return nil
}
