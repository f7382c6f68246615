package engine

import (
	"github.com/remiblancher/padsign/internal/certificate"
	"github.com/remiblancher/padsign/internal/options"
)

// BuildConfig maps validated signing options onto the engine's native
// configuration. The mapping is deterministic, performs no I/O and has no
// failure path: it assumes Validate has already accepted the options.
func BuildConfig(opts *options.SigningOptions, resolved *certificate.Resolved) *Config {
	cfg := &Config{
		Container:   resolved.Container,
		Password:    resolved.Password,
		Reason:      opts.Reason,
		Location:    opts.Location,
		ContactInfo: opts.ContactInfo,
		Name:        opts.Name,
		DocMDPPerm:  int(opts.Permission),
		Debug:       opts.Debug,
	}

	// Baseline signatures carry no timestamp and no revocation fields at
	// all; their absence is what tells the engine to skip both.
	if opts.Level == options.LevelAdvanced {
		cfg.Timestamp = timestampConfig(opts.Timestamp)
		cfg.Revocation = revocationMethod(opts.Revocation)
	}

	if opts.Visible != nil {
		cfg.Appearance = appearance(opts.Visible)
	}

	return cfg
}

// timestampConfig selects the timestamp authority: a caller-supplied URL
// (with its headers when given), or the default preset.
func timestampConfig(ts *options.TimestampAuthority) *TimestampConfig {
	if ts != nil && ts.URL != "" {
		cfg := &TimestampConfig{URL: ts.URL}
		if len(ts.Headers) > 0 {
			cfg.Headers = ts.Headers
		}
		return cfg
	}

	url, _ := TSAPresetURL(DefaultTSAPreset)
	return &TimestampConfig{URL: url}
}

func revocationMethod(m options.RevocationMethod) RevocationMethod {
	if m == options.RevocationCRLOnly {
		return RevocationCRLOnly
	}
	return RevocationOCSPFallbackCRL
}

func appearance(v *options.VisibleSignature) *Appearance {
	app := &Appearance{
		Page:   v.Position.Page,
		X:      v.Position.X,
		Y:      v.Position.Y,
		Width:  v.Position.Width,
		Height: v.Position.Height,
	}

	if v.Image != nil {
		app.Image = &ImageAppearance{
			Data:   v.Image.Bytes,
			Format: v.Image.Format,
		}
	}

	if v.Text != nil {
		app.Text = &TextAppearance{
			Content:    v.Text.Content,
			Size:       v.Text.Size,
			Font:       v.Text.Font,
			SubsetFont: v.Text.SubsetFont,
			Color:      v.Text.Color,
			Align:      textAlign(v.Text.Alignment),
			LineHeight: v.Text.LineHeight,
		}
	}

	return app
}

// textAlign translates the three-way alignment enumeration; an unspecified
// alignment is omitted entirely rather than defaulted.
func textAlign(alignment string) *TextAlign {
	var a TextAlign
	switch alignment {
	case "left":
		a = AlignLeft
	case "center":
		a = AlignCenter
	case "right":
		a = AlignRight
	default:
		return nil
	}
	return &a
}
