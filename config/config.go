// Package config reads the routing configuration file.
//
// The Router section pairs path patterns with actions, in the order they are written,
// next to a handful of reserved settings:
//
//	Router:
//	  show_default_lang: "false"
//	  home: /home
//	  /api/: service:backend/{0}
//	  /old: location:/new{0}
//	  /docs/(\w+): /manual/{1}
//	Locale:
//	  lang: en
//	  supported: [en, fr]
//
// The delims setting replaces the { and } template delimiters,
// which cannot be used by content holding inline CSS or JavaScript:
//
//	Router:
//	  delims: ["{{", "}}"]
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xy-planning-network/cairn"
	"github.com/xy-planning-network/cairn/content"
	"github.com/xy-planning-network/cairn/route"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHome = "/home"
	DefaultLang = "en"
)

// Config is the whole routing configuration file.
type Config struct {
	Router RouterSection `yaml:"Router"`
	Locale LocaleSection `yaml:"Locale"`
}

// RouterSection holds the rules and the settings of the router.
type RouterSection struct {
	// Rules are kept in the order they are declared.
	Rules []route.Entry

	ShowDefaultLang bool
	Home            string
	MaxRewrites     int
	LoginPath       string
	NotFoundPath    string

	// Delims are the left and right template action delimiters.
	Delims [2]string
}

// LocaleSection names the default and supported languages.
type LocaleSection struct {
	Lang      string   `yaml:"lang"`
	Supported []string `yaml:"supported"`
}

// Load reads and parses the file at fp.
func Load(fp string) (Config, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", cairn.ErrBadConfig, err)
	}

	return Parse(b)
}

// Parse parses b, filling in defaults for settings left out.
func Parse(b []byte) (Config, error) {
	cfg := Config{}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s", cairn.ErrBadConfig, err)
	}

	cfg.Router.defaults()
	if cfg.Locale.Lang == "" {
		cfg.Locale.Lang = DefaultLang
	}

	return cfg, nil
}

// Table compiles the Rules.
func (rs RouterSection) Table() (route.Table, error) {
	t, err := route.NewTable(rs.Rules)
	if err != nil {
		return route.Table{}, fmt.Errorf("%w: %w", cairn.ErrBadConfig, err)
	}

	return t, nil
}

func (rs *RouterSection) defaults() {
	if rs.Home == "" {
		rs.Home = DefaultHome
	}

	if rs.MaxRewrites <= 0 {
		rs.MaxRewrites = route.DefaultMaxRewrites
	}

	if rs.LoginPath == "" {
		rs.LoginPath = content.DefaultLoginPath
	}

	if rs.NotFoundPath == "" {
		rs.NotFoundPath = content.DefaultNotFoundPath
	}
}

// UnmarshalYAML decodes the reserved settings of the section and treats every other key as a rule.
func (rs *RouterSection) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: Router must be a mapping", value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode && k.Value != "delims" {
			return fmt.Errorf("line %d: %s must be a scalar", v.Line, k.Value)
		}

		switch k.Value {
		case "show_default_lang":
			// Only the literal true shows the default language.
			rs.ShowDefaultLang = strings.EqualFold(v.Value, "true")
		case "home":
			rs.Home = v.Value
		case "login":
			rs.LoginPath = v.Value
		case "not_found":
			rs.NotFoundPath = v.Value
		case "max_rewrites":
			n, err := strconv.Atoi(v.Value)
			if err != nil {
				return fmt.Errorf("line %d: max_rewrites: %s", v.Line, err)
			}
			rs.MaxRewrites = n
		case "delims":
			var d []string
			if err := v.Decode(&d); err != nil {
				return err
			}
			if len(d) != 2 {
				return fmt.Errorf("line %d: delims must hold a left and a right delimiter", v.Line)
			}
			rs.Delims = [2]string{d[0], d[1]}
		default:
			rs.Rules = append(rs.Rules, route.Entry{Pattern: k.Value, Action: v.Value})
		}
	}

	return nil
}
