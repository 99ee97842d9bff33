package content_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/cairn/content"
)

func file() *fstest.MapFile { return &fstest.MapFile{Data: []byte("x")} }

func TestResolveVariants(t *testing.T) {
	fsys := fstest.MapFS{
		"404/index.html":       file(),
		"login/public.html":    file(),
		"both/private.html":    file(),
		"both/public.html":     file(),
		"both/index.html":      file(),
		"priv/private.html":    file(),
		"pub/public.html":      file(),
		"gen/index.html":       file(),
		"privgen/private.html": file(),
		"privgen/index.html":   file(),
	}
	res := content.NewResolver(fsys)

	for _, tc := range []struct {
		name   string
		target string
		authed bool
		file   string
		to     string
	}{
		{"Authed-Private", "/both", true, "both/private.html", "/both"},
		{"Authed-General", "/gen", true, "gen/index.html", "/gen"},
		{"Authed-Private-Over-General", "/privgen", true, "privgen/private.html", "/privgen"},
		{"Authed-Public-Only", "/pub", true, "404/index.html", "/404"},
		{"Authed-None", "/nope", true, "404/index.html", "/404"},
		{"Anon-Public", "/both", false, "both/public.html", "/both"},
		{"Anon-General", "/gen", false, "gen/index.html", "/gen"},
		{"Anon-General-Over-Private", "/privgen", false, "privgen/index.html", "/privgen"},
		{"Anon-Private-Only", "/priv", false, "login/public.html", "/login"},
		{"Anon-None", "/nope", false, "404/index.html", "/404"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			sel, err := res.Resolve(tc.target, tc.authed)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.file, sel.File)
			require.Equal(t, tc.to, sel.Target)
			require.Equal(t, tc.target, sel.Source)
			require.Equal(t, tc.to != tc.target, sel.Fallback())
		})
	}
}

func TestResolveTrailingSlash(t *testing.T) {
	res := content.NewResolver(fstest.MapFS{"section/index.html": file()})

	a, err := res.Resolve("/section", false)
	require.Nil(t, err)

	b, err := res.Resolve("/section/", false)
	require.Nil(t, err)

	require.Equal(t, a.File, b.File)
}

func TestResolveRoot(t *testing.T) {
	res := content.NewResolver(fstest.MapFS{"index.html": file()})

	sel, err := res.Resolve("/", true)

	require.Nil(t, err)
	require.Equal(t, "index.html", sel.File)
}

func TestResolveLoginMissing(t *testing.T) {
	// Arrange
	fsys := fstest.MapFS{
		"priv/private.html": file(),
		"404/index.html":    file(),
	}
	res := content.NewResolver(fsys)

	// Act
	sel, err := res.Resolve("/priv", false)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "/404", sel.Target)
	require.Equal(t, "/priv", sel.Source)
}

func TestResolveLoginPrivateOnly(t *testing.T) {
	// Arrange
	fsys := fstest.MapFS{
		"priv/private.html":  file(),
		"login/private.html": file(),
		"404/index.html":     file(),
	}
	res := content.NewResolver(fsys)

	// Act
	sel, err := res.Resolve("/priv", false)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "/404", sel.Target)
	require.Equal(t, "/priv", sel.Source)
}

func TestResolveErrors(t *testing.T) {
	t.Run("Not-Found", func(t *testing.T) {
		res := content.NewResolver(fstest.MapFS{})

		_, err := res.Resolve("/missing", false)

		require.ErrorIs(t, err, content.ErrNotFound)
		require.EqualError(t, err, "not found: /missing")
	})

	t.Run("Not-Found-Names-Source", func(t *testing.T) {
		res := content.NewResolver(fstest.MapFS{"priv/private.html": file()})

		_, err := res.Resolve("/priv", false)

		require.ErrorIs(t, err, content.ErrNotFound)
		require.EqualError(t, err, "not found: /priv")
	})

	t.Run("Not-Found-Itself", func(t *testing.T) {
		res := content.NewResolver(fstest.MapFS{})

		_, err := res.Resolve("/404", false)

		require.EqualError(t, err, "not found: /404")
	})

	t.Run("Access-Denied", func(t *testing.T) {
		res := content.NewResolver(fstest.MapFS{"pub/public.html": file()})

		_, err := res.Resolve("/pub", true)

		require.ErrorIs(t, err, content.ErrAccessDenied)
		require.EqualError(t, err, "access denied: /pub")
	})

	t.Run("Access-Denied-No-Variant", func(t *testing.T) {
		res := content.NewResolver(fstest.MapFS{})

		_, err := res.Resolve("/missing", true)

		require.ErrorIs(t, err, content.ErrAccessDenied)
		require.EqualError(t, err, "access denied: /missing")
	})
}

func TestResolveOptions(t *testing.T) {
	fsys := fstest.MapFS{
		"members/private.html": file(),
		"signin/index.html":    file(),
		"missing/index.html":   file(),
	}
	res := content.NewResolver(fsys, content.WithLoginPath("/signin"), content.WithNotFoundPath("/missing"))

	sel, err := res.Resolve("/members", false)
	require.Nil(t, err)
	require.Equal(t, "signin/index.html", sel.File)

	sel, err = res.Resolve("/nowhere", false)
	require.Nil(t, err)
	require.Equal(t, "missing/index.html", sel.File)
}
