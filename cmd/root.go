package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yuwei/qdrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "qdrill",
	Short: "Multiple-choice drill practice in the terminal",
	Long:  "Qdrill runs multiple-choice drills from a local question bank, one question at a time, with scoring and wrong-answer review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank directory (overrides QDRILL_BANK env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QDRILL_DB env var)")

	rootCmd.AddCommand(banksCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveBankDir returns the bank directory using --bank (highest
// priority), then QDRILL_BANK, then ./bank.
func resolveBankDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	if p := os.Getenv("QDRILL_BANK"); p != "" {
		return p
	}
	return "bank"
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
