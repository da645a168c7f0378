package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	perr "layoffs/internal/platform/errors"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ro"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var embedded embed.FS

// Catalog resolves translation keys per language
type Catalog struct {
	uni    *ut.UniversalTranslator
	tables map[Lang]map[string]string
	keys   []string
}

var (
	defOnce sync.Once
	def     *Catalog
)

// Default returns the embedded catalog, panicking if the embedded files are broken
func Default() *Catalog {
	defOnce.Do(func() {
		c, err := Load(embedded, "catalog")
		if err != nil {
			panic(fmt.Sprintf("i18n: embedded catalog: %v", err))
		}
		def = c
	})
	return def
}

var (
	enLocale = en.New()
	roLocale = ro.New()
)

func locale(l Lang) locales.Translator {
	if l == EN {
		return enLocale
	}
	return roLocale
}

// Load reads <dir>/<lang>.yaml for every supported language from fsys.
// Each file is a flat key: text mapping.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	uni := ut.New(enLocale, enLocale, roLocale)
	c := &Catalog{uni: uni, tables: make(map[Lang]map[string]string, len(Langs()))}

	seen := make(map[string]struct{})
	for _, l := range Langs() {
		raw, err := fs.ReadFile(fsys, dir+"/"+string(l)+".yaml")
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "read %s catalog", l)
		}
		table := map[string]string{}
		if err := yaml.Unmarshal(raw, &table); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse %s catalog", l)
		}

		trans, found := uni.GetTranslator(locale(l).Locale())
		if !found {
			return nil, perr.Newf(perr.ErrorCodeUnknown, "no translator for %s", l)
		}
		for k, v := range table {
			if err := trans.Add(k, v, false); err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "add %s/%s", l, k)
			}
			seen[k] = struct{}{}
		}
		c.tables[l] = table
	}

	c.keys = make([]string, 0, len(seen))
	for k := range seen {
		c.keys = append(c.keys, k)
	}
	sort.Strings(c.keys)
	return c, nil
}

func (c *Catalog) lookup(l Lang, key string) (string, bool) {
	trans, found := c.uni.GetTranslator(locale(l).Locale())
	if !found {
		return "", false
	}
	s, err := trans.T(key)
	if err != nil {
		return "", false
	}
	return s, s != ""
}

// T translates key, falling back to English and then the key itself
func (c *Catalog) T(l Lang, key string) string {
	if s, ok := c.lookup(l.Or(DefaultLang), key); ok {
		return s
	}
	if s, ok := c.lookup(EN, key); ok {
		return s
	}
	return key
}

// Table returns every known key resolved for l
func (c *Catalog) Table(l Lang) map[string]string {
	out := make(map[string]string, len(c.keys))
	for _, k := range c.keys {
		out[k] = c.T(l, k)
	}
	return out
}

// Keys lists every key present in any language, sorted
func (c *Catalog) Keys() []string { return append([]string(nil), c.keys...) }

// Missing lists keys that l lacks and would resolve through the fallback
func (c *Catalog) Missing(l Lang) []string {
	out := make([]string, 0)
	for _, k := range c.keys {
		if _, ok := c.tables[l][k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
