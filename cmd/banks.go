package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuwei/qdrill/internal/bank"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the subjects available in the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := bank.NewLoader(resolveBankDir(cmd))
		catalog, err := loader.Catalog(cmd.Context())
		if err != nil {
			return fmt.Errorf("read catalog: %w", err)
		}

		for _, subj := range catalog.Subjects {
			if len(subj.Units) == 0 {
				n := countQuestions(cmd, loader, bank.Selection{Subject: subj.Name})
				fmt.Printf("%s%s\n", subj.Name, n)
				continue
			}
			fmt.Println(subj.Name)
			for _, u := range subj.Units {
				fmt.Printf("  %s\n", u.Name)
				for _, ch := range u.Chapters {
					sel := bank.Selection{Subject: subj.Name, Unit: u.Name, Chapter: ch.Name}
					fmt.Printf("    %s%s\n", ch.Name, countQuestions(cmd, loader, sel))
				}
			}
		}
		return nil
	},
}

// countQuestions loads a pool for display purposes; failures render as
// an empty suffix so one bad file does not break the listing.
func countQuestions(cmd *cobra.Command, loader *bank.Loader, sel bank.Selection) string {
	pool, _, err := loader.Load(cmd.Context(), sel)
	if err != nil {
		return "  (unreadable)"
	}
	return fmt.Sprintf("  (%d questions)", len(pool))
}
