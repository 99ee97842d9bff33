package render

import (
	"fmt"
	html "html/template"
	"io/fs"
	"path"
)

const (
	DefaultLeftDelim  = "{"
	DefaultRightDelim = "}"
)

// A Parser parses HTML templates out of an fs.FS with the functions and delimiters provided.
type Parser struct {
	fsys  fs.FS
	fns   html.FuncMap
	left  string
	right string
}

// NewParser constructs a *Parser reading templates from fsys.
func NewParser(fsys fs.FS, opts ...ParserOptFn) *Parser {
	p := &Parser{
		fsys:  fsys,
		fns:   make(html.FuncMap),
		left:  DefaultLeftDelim,
		right: DefaultRightDelim,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// AddFn includes the named function in the function map of every template p parses.
func (p *Parser) AddFn(name string, fn any) {
	if p.fns == nil {
		p.fns = make(html.FuncMap)
	}
	p.fns[name] = fn
}

// Parse parses the files named by fps, skipping empty names.
// The template returned is named after the first file.
func (p *Parser) Parse(fps ...string) (*html.Template, error) {
	names := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp != "" {
			names = append(names, fp)
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	return html.New(path.Base(names[0])).
		Delims(p.left, p.right).
		Funcs(p.fns).
		ParseFS(p.fsys, names...)
}
