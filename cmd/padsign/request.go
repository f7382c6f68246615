package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/remiblancher/padsign/internal/options"
)

// certificateRef points at certificate material on disk.
type certificateRef struct {
	// PKCS#12 container reference.
	P12      string `yaml:"p12,omitempty"`
	Password string `yaml:"password,omitempty"`

	// PEM pair reference.
	Cert       string `yaml:"cert,omitempty"`
	Key        string `yaml:"key,omitempty"`
	Passphrase string `yaml:"passphrase,omitempty"`
}

// requestFile is the YAML shape of a signing request. File references are
// resolved relative to the request file's directory.
type requestFile struct {
	Certificate certificateRef         `yaml:"certificate"`
	Options     options.SigningOptions `yaml:"options"`

	// Image optionally loads a visible-signature image from disk.
	Image string `yaml:"image,omitempty"`
}

// loadRequest parses a YAML request file and resolves its file references
// into a complete set of signing options.
func loadRequest(path string) (*options.SigningOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var req requestFile
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request file: %w", err)
	}

	baseDir := filepath.Dir(path)

	provider, err := providerFromFlags(
		resolvePath(baseDir, req.Certificate.P12), req.Certificate.Password,
		resolvePath(baseDir, req.Certificate.Cert),
		resolvePath(baseDir, req.Certificate.Key),
		req.Certificate.Passphrase,
	)
	if err != nil {
		return nil, err
	}

	opts := req.Options
	opts.Provider = provider

	if req.Image != "" {
		imgPath := resolvePath(baseDir, req.Image)
		img, err := os.ReadFile(imgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read signature image: %w", err)
		}
		if opts.Visible == nil {
			opts.Visible = &options.VisibleSignature{}
		}
		opts.Visible.Image = &options.SignatureImage{
			Bytes:  img,
			Format: imageFormat(imgPath),
		}
	}

	return &opts, nil
}

// resolvePath makes a reference relative to the request file's directory.
// Absolute references and empty values pass through.
func resolvePath(baseDir, ref string) string {
	if ref == "" || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(baseDir, ref)
}

// imageFormat derives the image format from the file extension.
func imageFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "jpeg" {
		return "jpg"
	}
	return ext
}
