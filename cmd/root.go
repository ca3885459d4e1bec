/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/taskchat/chatctl/internal/chatbot/config"
)

var (
	cfgFile  string
	verbose  bool
	userFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chatctl",
	Short: "A CLI tool for the task-assistant chat backend",
	Long: `chatctl is a command-line client for the task-assistant chat backend.
It sends messages to the AI assistant and manages your conversation history,
all stored server-side.
You can configure the tool using a TOML configuration file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/chatctl/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "act as this user id instead of the configured one")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Set environment variable prefix and automatic env
	viper.SetEnvPrefix("CHATCTL")
	viper.AutomaticEnv()

	// Set default values
	defaultConfig := config.NewDefaultConfig()
	viper.SetDefault("base_url", defaultConfig.BaseURL)
	viper.SetDefault("user_id", defaultConfig.UserID)
	viper.SetDefault("request_timeout", defaultConfig.RequestTimeout)

	// Bind environment variables
	viper.BindEnv("base_url", "CHATCTL_BASE_URL")
	viper.BindEnv("user_id", "CHATCTL_USER_ID")
	viper.BindEnv("request_timeout", "CHATCTL_REQUEST_TIMEOUT")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".config", "chatctl"))
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		fmt.Fprintln(os.Stderr, "Environment variables:")
		fmt.Fprintln(os.Stderr, "  CHATCTL_BASE_URL:", viper.GetString("base_url"))
		fmt.Fprintln(os.Stderr, "  CHATCTL_USER_ID:", viper.GetString("user_id"))
		fmt.Fprintln(os.Stderr, "  CHATCTL_REQUEST_TIMEOUT:", viper.GetInt("request_timeout"))
	}
}
