// Command padsign prepares certificate material and signing options for PDF
// signature workflows.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build-time variables (injected by GoReleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "padsign",
	Short: "PDF signing preparation toolkit",
	Long: `PadSign prepares certificate material and signing options for PDF
signature workflows.

It normalizes PKCS#12 and PEM certificate formats into one canonical
container form, extracts certificate metadata, validates signing options
against certificate state, and maps them to the signing engine's native
configuration. Engine network fetches can be routed through a passthrough
proxy.

Examples:
  # Inspect a PKCS#12 container
  padsign inspect --p12 signer.p12 --password secret

  # Inspect a PEM pair
  padsign inspect --cert signer.crt --key signer.key

  # Convert a PEM pair into a PKCS#12 container
  padsign convert --cert signer.crt --key signer.key --out signer.p12 --out-password secret

  # Dry-run a signing request
  padsign validate --request request.yaml

  # Probe a timestamp authority
  padsign tsa check --preset 1

  # Start the REST API and fetch forwarder
  padsign serve --port 8070`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tsaCmd)
	rootCmd.AddCommand(serveCmd)
}
