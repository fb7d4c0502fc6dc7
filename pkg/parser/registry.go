package parser

import "log/slog"

// Registry is an immutable mapping from language to parser. It is built
// once at startup and is read-only afterwards, so it is safe to share
// across concurrently executing analyses.
type Registry struct {
	parsers map[Language]Parser
}

// NewRegistry builds the registry covering the full fixed set of supported
// languages.
func NewRegistry() *Registry {
	return NewRegistryWith(
		NewJavaScriptParser(),
		NewTypeScriptParser(),
		NewTSXParser(),
		NewPythonParser(),
		NewGoParser(),
		NewRustParser(),
	)
}

// NewRegistryWith builds a registry from an explicit parser set. Tests use
// this to run against an isolated language subset.
func NewRegistryWith(parsers ...Parser) *Registry {
	m := make(map[Language]Parser, len(parsers))
	for _, p := range parsers {
		m[p.Language()] = p
	}
	slog.Info("parser registry initialized", "parsers", len(m))
	return &Registry{parsers: m}
}

// Get returns the parser for a language. The second return is false when no
// parser is available; the caller decides how to surface that.
func (r *Registry) Get(lang Language) (Parser, bool) {
	p, ok := r.parsers[lang]
	return p, ok
}

// Languages returns the registered languages in no particular order.
func (r *Registry) Languages() []Language {
	langs := make([]Language, 0, len(r.parsers))
	for lang := range r.parsers {
		langs = append(langs, lang)
	}
	return langs
}
