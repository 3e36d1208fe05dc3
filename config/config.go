package config

type (
	URL struct {
		// DefaultPorts maps a lowercased scheme into the port assumed whenever no explicit
		// (or no parsable) port is presented in the URL. Schemes missing in the map resolve
		// into the port 0, meaning no default is known.
		DefaultPorts map[string]uint16
	}

	Hex struct {
		// Strict makes the decoder reject non-hex characters with errors.ErrInvalidHexDigit
		// instead of silently treating them as zero nibbles.
		Strict bool `test:"nullable"`
	}
)

// Config holds settings used by the URL splitter and the hex decoder.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous behaviour.
type Config struct {
	URL URL
	Hex Hex
}

// Default returns default config. Splitter defaults follow the well-known ports, decoder
// is permissive.
func Default() *Config {
	return &Config{
		URL: URL{
			DefaultPorts: map[string]uint16{
				"http":  80,
				"https": 443,
			},
		},
		Hex: Hex{
			Strict: false,
		},
	}
}
