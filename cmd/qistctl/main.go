package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qistctl",
	Short: "Qist Market admin console",
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Admin API base URL")
	rootCmd.PersistentFlags().String("token", "", "Bearer token for the Admin API")
	rootCmd.PersistentFlags().String("profile", "", "Profile name in config (overrides active)")
	rootCmd.PersistentFlags().String("output", "table", "Output format (table|json)")
	rootCmd.PersistentFlags().String("screens", "", "YAML file with screen label overrides")
	rootCmd.PersistentFlags().Bool("yes", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log controller and session activity to stderr")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newScreensCmd())
	rootCmd.AddCommand(newOrdersCmd())
	rootCmd.AddCommand(newDealersCmd())
	rootCmd.AddCommand(newNotificationsCmd())
	rootCmd.AddCommand(newDemoCmd())
	for _, cmd := range newResourceCmds() {
		rootCmd.AddCommand(cmd)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
