package emit

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"github.com/saylorsolutions/strscreen/pkg/strscreen"
)

const (
	DefaultGeneratedBy = "strgen"
)

var (
	//go:embed strings.go.tmpl
	tmplText     string
	tmplTemplate = template.Must(template.New("template").Parse(tmplText))

	ErrDuplicateName = errors.New("duplicate generated identifier")
)

var _ Artifact = (*GoSource)(nil)

// GoSource generates a Go source file with an accessor function for each screened string.
// The generated file has no dependencies outside the standard library, and includes its own copy of the decode routine.
type GoSource struct {
	Package     string
	Exposed     bool
	GeneratedBy string

	entries []sourceEntry
	idents  map[string]string
}

type sourceEntry struct {
	Name       string
	FuncName   string
	DataString string
	KeyString  string
}

// ParamOpt operates on GoSource in a standard and predictable way, and is used in NewGoSource.
// If any ParamOpt returns an error, then construction stops and the error is returned.
type ParamOpt = func(gen *GoSource) error

// ExposeFunctions indicates that generated functions should be exposed.
func ExposeFunctions(val ...bool) ParamOpt {
	return func(gen *GoSource) error {
		if len(val) > 0 {
			gen.Exposed = val[0]
			return nil
		}
		gen.Exposed = true
		return nil
	}
}

// PackageName specifies the package name of the generated file.
// This is useful for cases where the expected package name doesn't match the name of the containing directory.
func PackageName(name string) ParamOpt {
	name = strings.TrimSpace(name)
	return func(gen *GoSource) error {
		if len(name) == 0 {
			return nil
		}
		if !token.IsIdentifier(name) {
			return fmt.Errorf("invalid package name '%s'", name)
		}
		gen.Package = name
		return nil
	}
}

// GeneratedBy sets the tool name reported in the generated file's header comment.
func GeneratedBy(tool string) ParamOpt {
	return func(gen *GoSource) error {
		if len(tool) > 0 {
			gen.GeneratedBy = tool
		}
		return nil
	}
}

// NewGoSource creates a GoSource emitter.
// The package name defaults to the name of the current working directory.
func NewGoSource(opts ...ParamOpt) (*GoSource, error) {
	gen := &GoSource{
		GeneratedBy: DefaultGeneratedBy,
		idents:      map[string]string{},
	}
	if err := populateContextData(gen); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(gen); err != nil {
			return nil, err
		}
	}
	return gen, nil
}

func populateContextData(gen *GoSource) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	gen.Package = fileCleansePattern.ReplaceAllString(filepath.Base(cwd), "_")
	return nil
}

// Emit adds an accessor for s.
// Since generated identifiers must be unique, an entry whose function name collides with a previous entry returns ErrDuplicateName.
func (g *GoSource) Emit(s strscreen.Screened) error {
	funcName := g.identifier(s.Name)
	if prev, ok := g.idents[funcName]; ok {
		return fmt.Errorf("%w: '%s' and '%s' both generate %s", ErrDuplicateName, prev, s.Name, funcName)
	}
	if _, ok := reservedIdents[funcName]; ok || funcName == g.lookupFunc() {
		return fmt.Errorf("%w: '%s' generates reserved identifier %s", ErrDuplicateName, s.Name, funcName)
	}
	g.idents[funcName] = s.Name
	g.entries = append(g.entries, sourceEntry{
		Name:       s.Name,
		FuncName:   funcName,
		DataString: fmt.Sprintf("%#v", s.Data),
		KeyString:  fmt.Sprintf("%#v", []byte(s.Key)),
	})
	return nil
}

// Render executes the template and formats the result as Go source.
func (g *GoSource) Render() ([]byte, error) {
	var buf bytes.Buffer
	err := tmplTemplate.Execute(&buf, map[string]any{
		"GeneratedBy": g.GeneratedBy,
		"Package":     g.Package,
		"Entries":     g.entries,
		"LookupFunc":  g.lookupFunc(),
	})
	if err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated source is invalid: %w", err)
	}
	return src, nil
}

// WriteTo renders the generated source to w.
func (g *GoSource) WriteTo(w io.Writer) (int64, error) {
	src, err := g.Render()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(src)
	return int64(n), err
}

var (
	fileCleansePattern = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	reservedIdents     = map[string]struct{}{
		"screenedStrings":            {},
		"unscreenString":             {},
		"errMalformedScreenedString": {},
	}
	// Package scope names that an unexposed accessor must not redeclare.
	packageScopeIdents = map[string]struct{}{
		"errors": {},
		"fmt":    {},
		"utf8":   {},
		"init":   {},
		"main":   {},
	}
)

func (g *GoSource) lookupFunc() string {
	if g.Exposed {
		return "LookupString"
	}
	return "lookupString"
}

// identifier generates a valid Go identifier for the given entry name, replacing invalid characters with '_'.
func (g *GoSource) identifier(name string) string {
	ident := fileCleansePattern.ReplaceAllString(name, "_")
	switch {
	case len(ident) == 0:
		ident = "str"
	case unicode.IsDigit(rune(ident[0])):
		ident = "_" + ident
	}
	if g.Exposed {
		ident = unicap(ident)
		if !unicode.IsUpper(rune(ident[0])) {
			ident = "Str" + ident
		}
		return ident
	}
	ident = unicapLower(ident)
	if ident == "_" {
		return "str_"
	}
	if _, ok := packageScopeIdents[ident]; ok || token.IsKeyword(ident) || types.Universe.Lookup(ident) != nil {
		// Shadowing a builtin like len would break the generated decode routine.
		ident += "_"
	}
	return ident
}

func unicap(s string) string {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return string(unicode.ToUpper(runes[0]))
	default:
		return string(append([]rune{unicode.ToUpper(runes[0])}, runes[1:]...))
	}
}

func unicapLower(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
