package render

// The ParserOptFn applies functional options to a *Parser when constructing it.
type ParserOptFn func(*Parser)

// WithDelims sets the action delimiters of parsed templates.
// Empty values keep the current delimiter.
func WithDelims(left, right string) ParserOptFn {
	return func(p *Parser) {
		if left != "" {
			p.left = left
		}

		if right != "" {
			p.right = right
		}
	}
}

// WithFn encloses a named function so it can be added to a *Parser's function map.
func WithFn(name string, fn any) ParserOptFn {
	return func(p *Parser) {
		p.AddFn(name, fn)
	}
}

// The PipelineOptFn applies functional options to a *Pipeline when constructing it.
type PipelineOptFn func(*Pipeline)

// WithFolderCache keeps parsed folder.conf files in c.
func WithFolderCache(c FolderCache) PipelineOptFn {
	return func(pl *Pipeline) {
		pl.cache = c
	}
}

// WithParser sets the *Parser expanding content files and layouts.
func WithParser(p *Parser) PipelineOptFn {
	return func(pl *Pipeline) {
		if p != nil {
			pl.parser = p
		}
	}
}
