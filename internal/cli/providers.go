package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dshills/empathic/internal/config"
	"github.com/dshills/empathic/internal/providers"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Generative provider management",
}

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported providers and their default models",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, name := range providers.Names() {
			fmt.Fprintf(out, "%-10s %s\n", name, providers.DefaultModel(name))
		}
	},
}

var flagCheckProvider string

var providersCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate provider credentials with a single request",
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides := map[string]string{}
		if flagCheckProvider != "" {
			overrides["provider"] = flagCheckProvider
		}
		cfg, err := config.Load(overrides)
		if err != nil {
			return err
		}

		out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
		fmt.Fprintf(out, "Checking %s...\n", cfg.Provider)

		p, err := providers.New(cfg.Provider, cfg.ProviderOptions())
		if err != nil {
			fmt.Fprintf(errOut, "FAIL: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, err = p.Generate(ctx, providers.GenerateRequest{
			Prompt:    "Respond with exactly: ok",
			Model:     cfg.Model,
			MaxTokens: 10,
		})
		if err != nil {
			fmt.Fprintf(errOut, "FAIL: %v\n", err)
			if providers.IsAuthError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		fmt.Fprintf(out, "OK: %s is configured and responding\n", cfg.Provider)
		return nil
	},
}

func init() {
	providersCmd.AddCommand(providersListCmd)
	providersCmd.AddCommand(providersCheckCmd)
	providersCheckCmd.Flags().StringVar(&flagCheckProvider, "provider", "", "Provider to check")
}
