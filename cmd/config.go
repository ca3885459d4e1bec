package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/taskchat/chatctl/internal/chatbot/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: configfile, base_url, user_id, request_timeout

Examples:
  chatctl config                  # Show all configuration
  chatctl config base_url         # Show only the backend base URL
  chatctl config user_id          # Show only the user id
  chatctl config request_timeout  # Show only the request timeout`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		// If a field is specified, show only that field
		if len(args) > 0 {
			field := strings.ToLower(args[0])
			switch field {
			case "configfile":
				fmt.Println(viper.ConfigFileUsed())
			case "base_url", "baseurl":
				fmt.Println(cfg.BaseURL)
			case "user_id", "userid":
				fmt.Println(cfg.UserID)
			case "request_timeout", "requesttimeout":
				fmt.Println(cfg.RequestTimeout)
			default:
				fmt.Fprintf(os.Stderr, "Unknown field: %s\n", args[0])
				fmt.Fprintf(os.Stderr, "Available fields: configfile, base_url, user_id, request_timeout\n")
				os.Exit(1)
			}
			return
		}

		// Display all configuration values
		fmt.Printf("ConfigFile: %s\n", viper.ConfigFileUsed())
		fmt.Printf("BaseURL: %s\n", cfg.BaseURL)
		fmt.Printf("UserID: %s\n", cfg.UserID)
		fmt.Printf("RequestTimeout: %d\n", cfg.RequestTimeout)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
