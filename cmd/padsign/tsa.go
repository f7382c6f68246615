package main

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/remiblancher/padsign/internal/engine"
	"github.com/remiblancher/padsign/internal/fetch"
	"github.com/remiblancher/padsign/internal/options"
	"github.com/remiblancher/padsign/internal/tsa"
)

// TSA command flags
var (
	tsaPreset string
	tsaURL    string
	tsaData   string
	tsaProxy  string
)

var tsaCmd = &cobra.Command{
	Use:   "tsa",
	Short: "Timestamp authority operations (RFC 3161)",
	Long: `Timestamp authority operations per RFC 3161.

This command provides:
  - check: Request a timestamp token from an authority and display it
  - list:  List the built-in authority presets

Examples:
  # Probe the default preset
  padsign tsa check

  # Probe a specific preset
  padsign tsa check --preset 3

  # Probe a custom authority through a proxy
  padsign tsa check --url https://tsa.example.com --proxy https://proxy.example.com`,
}

var tsaCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Request a timestamp token from an authority",
	RunE:  runTSACheck,
}

var tsaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in authority presets",
	RunE:  runTSAList,
}

func init() {
	tsaCheckCmd.Flags().StringVar(&tsaPreset, "preset", "", "Authority preset id (default: "+engine.DefaultTSAPreset+")")
	tsaCheckCmd.Flags().StringVar(&tsaURL, "url", "", "Custom authority URL (overrides --preset)")
	tsaCheckCmd.Flags().StringVar(&tsaData, "data", "", "File to timestamp (default: a probe message)")
	tsaCheckCmd.Flags().StringVar(&tsaProxy, "proxy", "", "Proxy base URL to route the request through")

	tsaCmd.AddCommand(tsaCheckCmd)
	tsaCmd.AddCommand(tsaListCmd)
}

func runTSACheck(cmd *cobra.Command, args []string) error {
	url := tsaURL
	if url == "" {
		preset := tsaPreset
		if preset == "" {
			preset = engine.DefaultTSAPreset
		}
		var ok bool
		url, ok = engine.TSAPresetURL(preset)
		if !ok {
			return fmt.Errorf("unknown authority preset: %q", preset)
		}
	}

	message := []byte("padsign tsa probe")
	if tsaData != "" {
		var err error
		message, err = os.ReadFile(tsaData)
		if err != nil {
			return fmt.Errorf("failed to read data file: %w", err)
		}
	}

	client := &http.Client{Timeout: 30 * time.Second}
	if tsaProxy != "" {
		client.Transport = fetch.NewTransport(nil, &options.ProxyConfig{BaseURL: tsaProxy})
	}

	token, err := tsa.Request(cmd.Context(), client,
		&engine.TimestampConfig{URL: url}, bytes.NewReader(message))
	if err != nil {
		return err
	}

	fmt.Println("Timestamp token:")
	fmt.Printf("  Authority:  %s\n", url)
	fmt.Printf("  Time:       %s\n", token.Time.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("  Serial:     %s\n", token.SerialNumber.Text(16))
	fmt.Printf("  Hash:       %s\n", token.HashAlgorithm)
	if token.Accuracy != 0 {
		fmt.Printf("  Accuracy:   %s\n", token.Accuracy)
	}
	return nil
}

func runTSAList(cmd *cobra.Command, args []string) error {
	presets := engine.TSAPresets()

	ids := make([]string, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Authority presets:")
	for _, id := range ids {
		marker := " "
		if id == engine.DefaultTSAPreset {
			marker = "*"
		}
		fmt.Printf("  %s %s  %s\n", marker, id, presets[id])
	}
	return nil
}
