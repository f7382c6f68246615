package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/remiblancher/padsign/internal/certificate"
)

// Convert command flags
var (
	convertCert        string
	convertKey         string
	convertPassphrase  string
	convertOut         string
	convertOutPassword string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a PEM pair into a PKCS#12 container",
	Long: `Convert a PEM certificate and private key into a PKCS#12 container.

The output container is encrypted under --out-password.

Examples:
  # Convert a plain PEM pair
  padsign convert --cert signer.crt --key signer.key --out signer.p12 --out-password secret

  # Convert with an encrypted source key
  padsign convert --cert signer.crt --key signer.key --passphrase keypass --out signer.p12 --out-password secret`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertCert, "cert", "", "Path to PEM certificate (required)")
	convertCmd.Flags().StringVar(&convertKey, "key", "", "Path to PEM private key (required)")
	convertCmd.Flags().StringVar(&convertPassphrase, "passphrase", "", "Private key passphrase")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "Output container path (required)")
	convertCmd.Flags().StringVar(&convertOutPassword, "out-password", "", "Output container password (required)")
	_ = convertCmd.MarkFlagRequired("cert")
	_ = convertCmd.MarkFlagRequired("key")
	_ = convertCmd.MarkFlagRequired("out")
	_ = convertCmd.MarkFlagRequired("out-password")
}

func runConvert(cmd *cobra.Command, args []string) error {
	certPEM, err := os.ReadFile(convertCert)
	if err != nil {
		return fmt.Errorf("failed to read certificate: %w", err)
	}
	keyPEM, err := os.ReadFile(convertKey)
	if err != nil {
		return fmt.Errorf("failed to read private key: %w", err)
	}

	container, err := certificate.Convert(certificate.PEMPair{
		Certificate: certPEM,
		Key:         keyPEM,
		Passphrase:  convertPassphrase,
	}, convertOutPassword)
	if err != nil {
		return err
	}

	if err := os.WriteFile(convertOut, container, 0600); err != nil {
		return fmt.Errorf("failed to write container: %w", err)
	}

	fmt.Printf("Container written to %s\n", convertOut)
	return nil
}
