package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remiblancher/padsign/internal/certificate"
	"github.com/remiblancher/padsign/internal/engine"
	"github.com/remiblancher/padsign/internal/options"
)

var validateRequestPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Dry-run a signing request",
	Long: `Validate a YAML signing request without signing anything.

The certificate is resolved, the options are checked against it, and the
engine configuration that would be used is printed.

Example request file:
  certificate:
    p12: signer.p12
    password: secret
  options:
    level: advanced
    reason: Contract approval
    proxy:
      base_url: https://proxy.example.com

Examples:
  padsign validate --request request.yaml`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateRequestPath, "request", "", "Path to YAML request file (required)")
	_ = validateCmd.MarkFlagRequired("request")
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts, err := loadRequest(validateRequestPath)
	if err != nil {
		return err
	}

	resolved, err := certificate.Resolve(opts.Provider)
	if err != nil {
		return err
	}

	warnings, err := options.Validate(opts, &resolved.Info)
	if err != nil {
		return err
	}

	cfg := engine.BuildConfig(opts, resolved)

	fmt.Println("Request is valid.")
	fmt.Println()
	printInfo(&resolved.Info)
	fmt.Println()
	printConfigSummary(cfg, opts)

	if len(warnings) > 0 {
		fmt.Println()
		fmt.Println("Warnings:")
		for _, w := range warnings {
			fmt.Printf("  - %s: %s\n", w.Code, w.Message)
		}
	}

	return nil
}

// printConfigSummary shows the engine configuration the request maps to.
func printConfigSummary(cfg *engine.Config, opts *options.SigningOptions) {
	fmt.Println("Engine configuration:")
	fmt.Printf("  Level:        %s\n", opts.Level)
	if cfg.Reason != "" {
		fmt.Printf("  Reason:       %s\n", cfg.Reason)
	}
	if cfg.Location != "" {
		fmt.Printf("  Location:     %s\n", cfg.Location)
	}
	if cfg.ContactInfo != "" {
		fmt.Printf("  Contact:      %s\n", cfg.ContactInfo)
	}
	if cfg.Name != "" {
		fmt.Printf("  Name:         %s\n", cfg.Name)
	}
	if cfg.DocMDPPerm != 0 {
		fmt.Printf("  DocMDP:       %d\n", cfg.DocMDPPerm)
	}
	if cfg.Timestamp != nil {
		fmt.Printf("  Timestamp:    %s\n", cfg.Timestamp.URL)
	}
	if cfg.Revocation != "" {
		fmt.Printf("  Revocation:   %s\n", cfg.Revocation)
	}
	if cfg.Appearance != nil {
		fmt.Printf("  Appearance:   page %d at (%.1f, %.1f) %gx%g\n",
			cfg.Appearance.Page, cfg.Appearance.X, cfg.Appearance.Y,
			cfg.Appearance.Width, cfg.Appearance.Height)
	}
}
