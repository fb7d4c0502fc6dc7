package parser

import "strings"

// Language identifies a supported programming language.
type Language string

const (
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangPython     Language = "python"
	LangGo         Language = "go"
	LangRust       Language = "rust"
	LangUnknown    Language = "unknown"
)

// extensionTable maps file extensions to languages. Matching is
// case-sensitive: "app.JS" does not resolve.
var extensionTable = map[string]Language{
	"js":  LangJavaScript,
	"jsx": LangJavaScript,
	"mjs": LangJavaScript,
	"ts":  LangTypeScript,
	"tsx": LangTSX,
	"py":  LangPython,
	"pyi": LangPython,
	"go":  LangGo,
	"rs":  LangRust,
}

// FromFilename resolves a language from a file name by its extension.
// Returns LangUnknown and false when the extension is not in the table.
func FromFilename(name string) (Language, bool) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return LangUnknown, false
	}
	lang, ok := extensionTable[name[idx+1:]]
	if !ok {
		return LangUnknown, false
	}
	return lang, true
}

// FromTag resolves an explicit language tag supplied by the caller.
func FromTag(tag string) (Language, bool) {
	switch Language(tag) {
	case LangJavaScript, LangTypeScript, LangTSX, LangPython, LangGo, LangRust:
		return Language(tag), true
	}
	return LangUnknown, false
}

// Extension returns the last extension of a file name, or "unknown" when
// there is none. Used for error reporting on unresolvable files.
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return "unknown"
	}
	return name[idx+1:]
}
