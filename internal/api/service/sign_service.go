// Package service provides business logic for the REST API.
package service

import (
	"context"
	"fmt"

	"github.com/remiblancher/padsign/internal/api/dto"
	"github.com/remiblancher/padsign/internal/certificate"
	"github.com/remiblancher/padsign/internal/engine"
	"github.com/remiblancher/padsign/internal/options"
	"github.com/remiblancher/padsign/internal/signing"
)

// SignService runs signing pipelines on behalf of API handlers.
type SignService struct {
	signer *signing.Signer
}

// NewSignService creates a SignService. A nil engine leaves the service in a
// degraded state where sign requests fail with engine.ErrUnavailable;
// inspection and validation still work.
func NewSignService(eng engine.Engine) *SignService {
	s := &SignService{}
	if eng != nil {
		s.signer = signing.New(eng)
	}
	return s
}

// Sign runs the full pipeline for one request.
func (s *SignService) Sign(ctx context.Context, req *dto.SignRequest) (*dto.SignResponse, error) {
	if s.signer == nil {
		return nil, engine.ErrUnavailable
	}

	document, err := req.Document.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	provider, err := req.Certificate.ToProvider()
	if err != nil {
		return nil, &certificate.ParseError{Message: err.Error(), Err: err}
	}

	opts := req.Options
	opts.Provider = provider

	signed, warnings, err := s.signer.Sign(ctx, document, &opts)
	if err != nil {
		return nil, err
	}

	return &dto.SignResponse{
		Document: dto.NewBase64(signed),
		Warnings: warnings,
	}, nil
}

// Validate resolves the certificate and checks the options against it,
// without invoking the engine.
func (s *SignService) Validate(ctx context.Context, req *dto.ValidateRequest) (*dto.ValidateResponse, error) {
	provider, err := req.Certificate.ToProvider()
	if err != nil {
		return nil, &certificate.ParseError{Message: err.Error(), Err: err}
	}

	resolved, err := certificate.Resolve(provider)
	if err != nil {
		return nil, err
	}

	opts := req.Options
	opts.Provider = provider

	warnings, err := options.Validate(&opts, &resolved.Info)
	if err != nil {
		return nil, err
	}

	return &dto.ValidateResponse{
		Valid:    true,
		Warnings: warnings,
		Info:     dto.NewCertificateInfo(&resolved.Info),
	}, nil
}

// Inspect extracts certificate metadata.
func (s *SignService) Inspect(ctx context.Context, req *dto.InspectRequest) (*dto.InspectResponse, error) {
	provider, err := req.Certificate.ToProvider()
	if err != nil {
		return nil, &certificate.ParseError{Message: err.Error(), Err: err}
	}

	info, err := certificate.Inspect(provider)
	if err != nil {
		return nil, err
	}

	return &dto.InspectResponse{Info: dto.NewCertificateInfo(info)}, nil
}
