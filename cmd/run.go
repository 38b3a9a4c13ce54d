package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuwei/qdrill/internal/app"
	"github.com/yuwei/qdrill/internal/bank"
	"github.com/yuwei/qdrill/internal/explain"
	"github.com/yuwei/qdrill/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bankDir := resolveBankDir(cmd)
	opts := app.Options{
		Loader:  bank.NewLoader(bankDir),
		Prefs:   st.Prefs(),
		Explain: explain.NewFetcher(bankDir),
	}

	return app.Run(opts)
}
