package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	html "html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/xy-planning-network/cairn/content"
)

const (
	// StartupGlob matches the template expanded before every request is routed.
	StartupGlob = "layouts/startup.*"

	langToken     = "////"
	endpointToken = "///"
)

var bufPool = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// A Page is everything a Pipeline needs to render one selection.
type Page struct {
	content.Selection

	// EndpointPrefix replaces the URL tokens in the output.
	EndpointPrefix string

	// Lang is the active language.
	Lang string

	// LangSegment follows EndpointPrefix when replacing ////.
	LangSegment string

	// Query holds the routed query arguments.
	Query map[string]string
}

// A Pipeline renders content files found under base in a site filesystem.
// Layouts, the startup template and folder.conf overrides are read from the same filesystem.
type Pipeline struct {
	root   fs.FS
	base   string
	parser *Parser
	cache  FolderCache
}

// NewPipeline constructs a *Pipeline.
// Content files are read from base in root.
func NewPipeline(root fs.FS, base string, opts ...PipelineOptFn) *Pipeline {
	pl := &Pipeline{root: root, base: path.Clean(base)}
	for _, opt := range opts {
		opt(pl)
	}

	if pl.parser == nil {
		pl.parser = NewParser(root)
	}

	return pl
}

// Content returns the filesystem content files are read from.
func (pl *Pipeline) Content() (fs.FS, error) {
	if pl.base == "." {
		return pl.root, nil
	}

	return fs.Sub(pl.root, pl.base)
}

// Startup expands the first template matching StartupGlob with no data, discarding its output.
// Startup does nothing when no such template exists.
func (pl *Pipeline) Startup(ctx context.Context) error {
	matches, err := fs.Glob(pl.root, StartupGlob)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		return nil
	}

	tmpl, err := pl.parser.Parse(matches[0])
	if err != nil {
		return err
	}

	return tmpl.Execute(io.Discard, map[string]any{})
}

// Render expands the file selected by page, wraps it in its layout when one exists,
// and replaces the URL tokens of the result.
func (pl *Pipeline) Render(ctx context.Context, page Page) ([]byte, error) {
	file := path.Join(pl.base, page.File)
	dir := path.Dir(file)

	data := map[string]any{
		"router": map[string]string{
			"path":       dir,
			"url":        page.EndpointPrefix + dir,
			"target":     page.Target,
			"source":     page.Source,
			"target_url": page.EndpointPrefix + strings.TrimPrefix(page.Target, "/"),
			"source_url": page.EndpointPrefix + strings.TrimPrefix(page.Source, "/"),
		},
		"args": page.Query,
		"lang": page.Lang,
	}

	body, err := pl.expand(file, data)
	if err != nil {
		return nil, err
	}

	fc, err := pl.folderConf(ctx, dir)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(path.Base(file), path.Ext(file))
	layout := strings.TrimPrefix(fc.Layout(stem), "/")

	out := body
	if _, err := fs.Stat(pl.root, layout); err == nil {
		data["content"] = html.HTML(body)
		if out, err = pl.expand(layout, data); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not stat layout %s: %w", layout, err)
	}

	return Substitute(out, page.EndpointPrefix, page.LangSegment), nil
}

// Substitute replaces //// with endpointPrefix and the language segment, then /// with endpointPrefix.
// An empty segment leaves endpointPrefix alone in place of ////.
func Substitute(out []byte, endpointPrefix, segment string) []byte {
	lang := endpointPrefix
	if segment != "" {
		lang += segment + "/"
	}

	out = bytes.ReplaceAll(out, []byte(langToken), []byte(lang))
	return bytes.ReplaceAll(out, []byte(endpointToken), []byte(endpointPrefix))
}

func (pl *Pipeline) expand(fp string, data any) ([]byte, error) {
	tmpl, err := pl.parser.Parse(fp)
	if err != nil {
		return nil, err
	}

	b := bufPool.Get().(*bytes.Buffer)
	b.Reset()
	defer bufPool.Put(b)

	if err := tmpl.Execute(b, data); err != nil {
		return nil, err
	}

	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	return out, nil
}

func (pl *Pipeline) folderConf(ctx context.Context, dir string) (FolderConf, error) {
	if pl.cache != nil {
		if fc, ok := pl.cache.Get(ctx, dir); ok {
			return fc, nil
		}
	}

	fc, err := ReadFolderConf(pl.root, dir)
	if err != nil {
		return FolderConf{}, err
	}

	if pl.cache != nil {
		pl.cache.Set(ctx, dir, fc)
	}

	return fc, nil
}
