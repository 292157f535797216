package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/authsmith/authsmith/internal/app"
	"github.com/authsmith/authsmith/internal/scaffold"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Bootstrap a new deployment project",
	Long: `Bootstrap a new OpenID Connect provider deployment project in the given
directory (default: current directory). Every step is idempotent: artifacts
that already exist are left untouched, so init is safe to re-run against a
partially initialized project.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("yes", "y", false, "answer yes to all prompts")
	initCmd.Flags().Bool("skip-git", false, "skip git repository initialization")
	initCmd.Flags().Bool("skip-keys", false, "skip RSA key pair generation")
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	// Initialize the application
	smith, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize Authsmith: %w", err)
	}

	assumeYes, _ := cmd.Flags().GetBool("yes")
	skipGit, _ := cmd.Flags().GetBool("skip-git")
	skipKeys, _ := cmd.Flags().GetBool("skip-keys")

	err = smith.Init(context.Background(), target, app.InitOptions{
		AssumeYes: assumeYes,
		SkipGit:   skipGit,
		SkipKeys:  skipKeys,
	})
	if errors.Is(err, scaffold.ErrAborted) {
		return fmt.Errorf("aborted: %s was left untouched", target)
	}
	return err
}
