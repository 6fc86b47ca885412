package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linkstash",
	Short: "Linkstash CLI",
	Long:  "Command line client for the Linkstash bookmarking API",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// GetRoot returns the root command so subpackages can register commands on it.
func GetRoot() *cobra.Command {
	return rootCmd
}
