package render_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/render"
)

func TestParse(t *testing.T) {
	fsys := fstest.MapFS{
		"example.tmpl": mapFile("<p>{env}</p>"),
		"nonce.tmpl":   mapFile("{nonce}"),
	}
	p := render.NewParser(fsys, render.WithFn(render.Env(cairn.Testing)), render.WithFn(render.Nonce()))

	t.Run("Nothing", func(t *testing.T) {
		tmpl, err := p.Parse()

		require.ErrorIs(t, err, render.ErrNoFiles)
		require.Nil(t, tmpl)
	})

	t.Run("Empty-String", func(t *testing.T) {
		tmpl, err := p.Parse("")

		require.ErrorIs(t, err, render.ErrNoFiles)
		require.Nil(t, tmpl)
	})

	t.Run("No-File", func(t *testing.T) {
		tmpl, err := p.Parse("missing.tmpl")

		require.NotNil(t, err)
		require.Nil(t, tmpl)
	})

	t.Run("Env", func(t *testing.T) {
		tmpl, err := p.Parse("", "example.tmpl")
		require.Nil(t, err)
		require.Equal(t, "example.tmpl", tmpl.Name())

		b := new(bytes.Buffer)
		require.Nil(t, tmpl.Execute(b, nil))
		require.Equal(t, "<p>TESTING</p>", b.String())
	})

	t.Run("Nonce", func(t *testing.T) {
		tmpl, err := p.Parse("nonce.tmpl")
		require.Nil(t, err)

		b := new(bytes.Buffer)
		require.Nil(t, tmpl.Execute(b, nil))
		require.Len(t, b.String(), 36)
	})
}
