package cmd

import (
	"fmt"

	"github.com/spigell/web3-navigator/internal/navigator"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the architecture profiles the navigator scores against",
	Run: func(_ *cobra.Command, _ []string) {
		for _, p := range navigator.Profiles() {
			fmt.Printf("%s (%s)\n", p.Name, p.Key)
			fmt.Printf("  %s\n", p.Tagline)
			fmt.Printf("  %s\n", p.Description)
			fmt.Printf("  privacy %.2f / soundness %.2f / performance %.2f / complexity %.2f\n\n",
				p.PrivacyFocus, p.SoundnessFocus, p.PerformanceFocus, p.Complexity)
		}
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
