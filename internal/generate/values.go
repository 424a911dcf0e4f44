package generate

import (
	"os"

	"github.com/splinterwood/readmegen/internal/config"
	"github.com/splinterwood/readmegen/internal/render"
)

// Environment variables that override config-file values. Flags override both.
const (
	EnvEmoji       = "READMEGEN_EMOJI"
	EnvTagline     = "READMEGEN_TAGLINE"
	EnvQuote       = "READMEGEN_QUOTE"
	EnvQuoteAuthor = "READMEGEN_QUOTE_AUTHOR"
	EnvBrewLink    = "READMEGEN_BREW_LINK"
)

// buildMapping assembles the placeholder mapping for one render.
// Precedence per value: flag > environment > config file > default.
// Keys whose resolved value is empty are omitted so their tokens stay
// verbatim in the output (intentionally-unresolved placeholders surface
// visibly rather than vanishing).
func buildMapping(opts Options, cfg *config.Config, name, version string) render.Mapping {
	m := render.Mapping{
		render.KeyCLIName: name,
		render.KeyVersion: version,
	}

	set := func(key, flagVal, envVar, cfgVal, fallback string) {
		val := flagVal
		if val == "" {
			val = os.Getenv(envVar)
		}
		if val == "" {
			val = cfgVal
		}
		if val == "" {
			val = fallback
		}
		if val != "" {
			m[key] = val
		}
	}

	set(render.KeyEmoji, opts.Emoji, EnvEmoji, cfg.Emoji, config.DefaultEmoji)
	set(render.KeyTagline, opts.Tagline, EnvTagline, cfg.Tagline, "")
	set(render.KeyQuote, opts.Quote, EnvQuote, cfg.Quote, "")
	set(render.KeyQuoteAuthor, opts.QuoteAuthor, EnvQuoteAuthor, cfg.QuoteAuthor, "")
	set(render.KeyBrewLink, opts.BrewLink, EnvBrewLink, cfg.BrewLink, "")

	return m
}
