package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the pulse CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pulse version %s\n", version)
		fmt.Println("A mock exchange for creator tokens")
		fmt.Println("https://github.com/RayyanDarugar/Pulse")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
