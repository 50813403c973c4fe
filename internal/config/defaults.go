package config

const (
	defaultAssetDir       = "~/.local/share/glyphfetch/assets"
	defaultLogDir         = "~/.local/share/glyphfetch/logs"
	defaultBaseURL        = "https://raw.githubusercontent.com/jdecked/twemoji"
	defaultVersion        = "v16.0.1"
	defaultSize           = "72x72"
	defaultRequestTimeout = 30
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// defaultSymbols is the glyph set consumed by the downstream subtitle
// font build, in the order the assets are fetched.
var defaultSymbols = []string{
	"⚠️",     // warning sign
	"❌",           // cross mark
	"\U0001f4a1",       // light bulb
	"\U0001f4b0",       // money bag
	"\U0001f92b",       // shushing face
	"⚡",           // high voltage
	"✅",           // check mark button
	"\U0001f525",       // fire
	"\U0001f4bc",       // briefcase
	"\U0001f4e7",       // e-mail
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AssetDir: defaultAssetDir,
			LogDir:   defaultLogDir,
		},
		Assets: Assets{
			BaseURL:        defaultBaseURL,
			Version:        defaultVersion,
			Size:           defaultSize,
			Symbols:        append([]string(nil), defaultSymbols...),
			RequestTimeout: defaultRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
