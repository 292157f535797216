// Package cli provides the command-line interface for Authsmith.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "authsmith",
	Short: "Bootstrap self-hosted OpenID Connect deployments",
	Long: `Authsmith scaffolds a new OpenID Connect provider deployment project:
it creates the project directory, initializes git, writes a package manifest
and per-environment configuration with fresh session secrets, copies the
bundled server and view templates, and generates an RSA signing key pair.`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./authsmith.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory and standard locations
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.authsmith")
		viper.AddConfigPath("/etc/authsmith")
		viper.SetConfigName("authsmith")
		viper.SetConfigType("yaml")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("AUTHSMITH")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
