package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"contentgate/internal/core/content"
)

// File names looked up in the corpus directory
const (
	QuotesFile      = "quotes.json"
	ManifestFile    = "manifest.json"
	ScriptureFile   = "scripture.json"
	DevotionalsFile = "devotionals.json"
)

// Options for Load
type Options struct {
	// Dir overrides the embedded corpus per file when set (CORPUS_DIR)
	Dir string
	Log *zerolog.Logger
}

type quotesDoc struct {
	Version  int                 `json:"version"`
	Metadata map[string]any      `json:"metadata"`
	Quotes   []content.QuoteItem `json:"quotes"`
}

// shard manifests written by the curation tooling use "files"; "shards" is accepted too
type manifestDoc struct {
	Version int      `json:"version"`
	Shards  []string `json:"shards"`
	Files   []string `json:"files"`
}

type scriptureDoc struct {
	Version  int                                   `json:"version"`
	Themes   map[string][]content.ScripturePassage `json:"themes"`
	Fallback []content.ScripturePassage            `json:"fallback"`
}

type devotionalsDoc struct {
	Version     int                  `json:"version"`
	Devotionals []content.Devotional `json:"devotionals"`
	Prayers     []content.Prayer     `json:"prayers"`
}

// Load reads the embedded corpus and then applies any files found in opts.Dir
func Load(opts Options) (*Corpus, error) {
	base, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("corpus: embedded: %w", err)
	}
	c := &Corpus{}
	if err := c.read(base, false); err != nil {
		return nil, fmt.Errorf("corpus: embedded: %w", err)
	}
	if opts.Dir == "" {
		return c, nil
	}
	if err := c.read(os.DirFS(opts.Dir), true); err != nil {
		return nil, fmt.Errorf("corpus: %s: %w", opts.Dir, err)
	}
	if opts.Log != nil {
		opts.Log.Info().
			Str("dir", opts.Dir).
			Int("quotes", len(c.quotes)).
			Int("themes", len(c.themes)).
			Msg("corpus loaded from directory")
	}
	return c, nil
}

// MustLoad loads the embedded corpus and panics on error
func MustLoad() *Corpus {
	c, err := Load(Options{})
	if err != nil {
		panic(err)
	}
	return c
}

// read applies the documents present in fsys; optional files may be absent
func (c *Corpus) read(fsys fs.FS, optional bool) error {
	quotes, err := readQuotes(fsys)
	switch {
	case err == nil:
		c.quotes = quotes
	case errors.Is(err, fs.ErrNotExist) && optional:
	default:
		return err
	}

	var sd scriptureDoc
	switch err := readJSON(fsys, ScriptureFile, &sd); {
	case err == nil:
		if sd.Themes != nil {
			c.themes = make(map[string][]content.ScripturePassage, len(sd.Themes))
			for k, ps := range sd.Themes {
				c.themes[strings.ToLower(strings.TrimSpace(k))] = withPassageDefaults(ps, content.SourceKJVLocal)
			}
		}
		if len(sd.Fallback) > 0 {
			c.fallback = withPassageDefaults(sd.Fallback, content.SourceFallback)
		}
	case errors.Is(err, fs.ErrNotExist) && optional:
	default:
		return err
	}

	var dd devotionalsDoc
	switch err := readJSON(fsys, DevotionalsFile, &dd); {
	case err == nil:
		if len(dd.Devotionals) > 0 {
			c.devotionals = dd.Devotionals
		}
		if len(dd.Prayers) > 0 {
			c.prayers = dd.Prayers
		}
	case errors.Is(err, fs.ErrNotExist) && optional:
	default:
		return err
	}
	return nil
}

// readQuotes prefers the master file and falls back to a shard manifest
func readQuotes(fsys fs.FS) ([]content.QuoteItem, error) {
	var qd quotesDoc
	err := readJSON(fsys, QuotesFile, &qd)
	if err == nil {
		return withQuoteDefaults(qd.Quotes)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var md manifestDoc
	if err := readJSON(fsys, ManifestFile, &md); err != nil {
		return nil, err
	}
	files := md.Shards
	if len(files) == 0 {
		files = md.Files
	}
	var all []content.QuoteItem
	for _, f := range files {
		var shard quotesDoc
		if err := readJSON(fsys, shardPath(fsys, f), &shard); err != nil {
			// a missing shard is fatal, not an absent optional file
			return nil, fmt.Errorf("shard %s: %v", f, err)
		}
		all = append(all, shard.Quotes...)
	}
	return withQuoteDefaults(all)
}

// shardPath resolves a manifest entry relative to the corpus root, falling back
// to its base name when the tooling wrote an app-relative path
func shardPath(fsys fs.FS, p string) string {
	p = path.Clean(strings.TrimPrefix(p, "/"))
	if _, err := fs.Stat(fsys, p); err == nil {
		return p
	}
	return path.Base(p)
}

func readJSON(fsys fs.FS, name string, v any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func withQuoteDefaults(qs []content.QuoteItem) ([]content.QuoteItem, error) {
	for i := range qs {
		q := &qs[i]
		if q.ID == "" || strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("quote %d: id and text are required", i)
		}
		if q.License == "" {
			q.License = content.LicensePublicDomain
		}
		if q.Source == "" {
			q.Source = content.SourceLocal
		}
		if q.Tags == nil {
			q.Tags = []string{}
		}
	}
	return qs, nil
}

func withPassageDefaults(ps []content.ScripturePassage, source string) []content.ScripturePassage {
	for i := range ps {
		if ps[i].License == "" {
			ps[i].License = content.LicensePublicDomain
		}
		if ps[i].Source == "" {
			ps[i].Source = source
		}
	}
	return ps
}
