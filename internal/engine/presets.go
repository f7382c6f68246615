package engine

// DefaultTSAPreset is used when the advanced level is requested without an
// explicit timestamp-authority URL.
const DefaultTSAPreset = "1"

// tsaPresets maps single-character preset identifiers to well-known RFC 3161
// timestamp-authority endpoints.
var tsaPresets = map[string]string{
	"1": "http://timestamp.digicert.com",
	"2": "http://timestamp.globalsign.com/tsa/r6advanced1",
	"3": "http://timestamp.sectigo.com",
	"4": "http://timestamp.entrust.net/TSS/RFC3161sha2TS",
	"5": "http://timestamp.apple.com/ts01",
	"6": "http://time.certum.pl",
	"7": "http://tsa.swisssign.net",
}

// TSAPresetURL resolves a preset identifier to its endpoint URL.
func TSAPresetURL(id string) (string, bool) {
	url, ok := tsaPresets[id]
	return url, ok
}

// TSAPresets returns a copy of the preset table, keyed by identifier.
func TSAPresets() map[string]string {
	out := make(map[string]string, len(tsaPresets))
	for id, url := range tsaPresets {
		out[id] = url
	}
	return out
}
