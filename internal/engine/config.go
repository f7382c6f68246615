package engine

// Config is the engine's native signing configuration. It is produced by
// BuildConfig and handed to the engine verbatim; padsign's only obligation is
// a deterministic, lossless mapping into it.
//
// Optional scalar fields use their zero value for absence: the engine treats
// an empty Reason as "write no reason", a zero DocMDPPerm as "no modification
// restriction", and so on. Nil sub-structures mean the corresponding feature
// is not requested; in particular a nil Timestamp is what tells the engine to
// produce an untimestamped signature.
type Config struct {
	// Container and Password are always set: the PKCS#12 bundle the engine
	// opens to obtain the signing key and chain.
	Container []byte
	Password  string

	// Signature metadata, written into the signature dictionary when set.
	Reason      string
	Location    string
	ContactInfo string
	Name        string

	// DocMDPPerm is the modification tier (1..3), zero when unrestricted.
	DocMDPPerm int

	// Timestamp selects the RFC 3161 authority; nil at the baseline level.
	Timestamp *TimestampConfig

	// Revocation selects how long-term validation evidence is gathered;
	// empty at the baseline level.
	Revocation RevocationMethod

	// Appearance places a visible signature; nil for an invisible one.
	Appearance *Appearance

	Debug bool
}

// RevocationMethod is the engine's revocation-evidence strategy.
type RevocationMethod string

const (
	// RevocationOCSPFallbackCRL queries OCSP first, falling back to CRL.
	RevocationOCSPFallbackCRL RevocationMethod = "ocsp-crl"

	// RevocationCRLOnly uses CRL exclusively.
	RevocationCRLOnly RevocationMethod = "crl"
)

// TimestampConfig describes the timestamp authority the engine contacts.
type TimestampConfig struct {
	URL     string
	Headers map[string]string
}

// Appearance places and renders a visible signature. Page is 1-based; zero
// selects the engine's default page.
type Appearance struct {
	Page   int
	X      float64
	Y      float64
	Width  float64
	Height float64

	Image *ImageAppearance
	Text  *TextAppearance
}

// ImageAppearance is a raster signature appearance.
type ImageAppearance struct {
	Data   []byte
	Format string
}

// TextAlign is the engine's text alignment enumeration.
type TextAlign int

const (
	AlignLeft   TextAlign = 0
	AlignCenter TextAlign = 1
	AlignRight  TextAlign = 2
)

// TextAppearance is a rendered-text signature appearance. Align is nil when
// the caller did not specify an alignment.
type TextAppearance struct {
	Content    string
	Size       float64
	Font       []byte
	SubsetFont bool
	Color      string
	Align      *TextAlign
	LineHeight float64
}
