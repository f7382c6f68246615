package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/remiblancher/padsign/internal/certificate"
)

// Inspect command flags
var (
	inspectP12        string
	inspectPassword   string
	inspectCert       string
	inspectKey        string
	inspectPassphrase string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Display certificate metadata",
	Long: `Inspect certificate material and display its metadata.

Accepts either a PKCS#12 container or a PEM certificate/key pair.

Examples:
  # Inspect a PKCS#12 container
  padsign inspect --p12 signer.p12 --password secret

  # Inspect a PEM pair with an encrypted key
  padsign inspect --cert signer.crt --key signer.key --passphrase secret`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectP12, "p12", "", "Path to PKCS#12 container")
	inspectCmd.Flags().StringVar(&inspectPassword, "password", "", "Container password")
	inspectCmd.Flags().StringVar(&inspectCert, "cert", "", "Path to PEM certificate")
	inspectCmd.Flags().StringVar(&inspectKey, "key", "", "Path to PEM private key")
	inspectCmd.Flags().StringVar(&inspectPassphrase, "passphrase", "", "Private key passphrase")
}

func runInspect(cmd *cobra.Command, args []string) error {
	provider, err := providerFromFlags(
		inspectP12, inspectPassword,
		inspectCert, inspectKey, inspectPassphrase,
	)
	if err != nil {
		return err
	}

	info, err := certificate.Inspect(provider)
	if err != nil {
		return err
	}

	printInfo(info)
	return nil
}

// providerFromFlags builds a certificate provider from the shared flag set.
func providerFromFlags(p12Path, password, certPath, keyPath, passphrase string) (certificate.Provider, error) {
	switch {
	case p12Path != "":
		data, err := os.ReadFile(p12Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read container: %w", err)
		}
		return certificate.Container{Bytes: data, Password: password}, nil

	case certPath != "" && keyPath != "":
		certPEM, err := os.ReadFile(certPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read certificate: %w", err)
		}
		keyPEM, err := os.ReadFile(keyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read private key: %w", err)
		}
		return certificate.PEMPair{
			Certificate: certPEM,
			Key:         keyPEM,
			Passphrase:  passphrase,
		}, nil

	default:
		return nil, fmt.Errorf("either --p12 or both --cert and --key are required")
	}
}

func printInfo(info *certificate.Info) {
	fmt.Println("Certificate:")
	fmt.Printf("  Subject:      %s\n", info.Subject)
	fmt.Printf("  Issuer:       %s\n", info.Issuer)
	fmt.Printf("  Serial:       %s\n", info.SerialNumber)
	fmt.Printf("  Not before:   %s\n", info.NotBefore.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("  Not after:    %s\n", info.NotAfter.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("  Self-signed:  %t\n", info.SelfSigned)
	if info.IsExpired() {
		fmt.Println("  Status:       EXPIRED")
	} else {
		fmt.Println("  Status:       valid")
	}
}
