package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"contentgate/internal/core/content"
)

func TestEmbedded_Shape(t *testing.T) {
	c := MustLoad()
	qs := c.Quotes()
	if len(qs) != 20 || qs[0].ID != "pd_1" || qs[19].ID != "pd_20" {
		t.Fatalf("unexpected quotes: %d", len(qs))
	}
	if got := c.Themes(); len(got) != 1 || got[0] != "gluttony" {
		t.Fatalf("themes = %v", got)
	}
	if len(c.Fallback()) != 5 || len(c.Devotionals()) != 5 || len(c.Prayers()) != 5 {
		t.Fatalf("fallback sets wrong size")
	}
	for _, p := range c.Fallback() {
		if p.Source != content.SourceFallback || p.License != content.LicensePublicDomain {
			t.Fatalf("fallback passage defaults: %+v", p)
		}
	}
}

func TestPassages_NormalizesTheme(t *testing.T) {
	c := MustLoad()
	ps := c.Passages("  GLUTTONY ")
	if len(ps) != 1 || !strings.HasPrefix(ps[0].Ref, "1 Corinthians 9") {
		t.Fatalf("passages = %+v", ps)
	}
	if ps[0].Source != content.SourceKJVLocal || len(ps[0].Verses) != 4 {
		t.Fatalf("passage = %+v", ps[0])
	}
	if len(c.Passages("pride")) != 0 {
		t.Fatalf("unknown theme should be empty")
	}
	if c.PassageCount() != 1 {
		t.Fatalf("PassageCount = %d", c.PassageCount())
	}
}

func TestLocalQuotes_FaithSplit(t *testing.T) {
	c := MustLoad()

	faith := c.LocalQuotes(true, 50)
	if len(faith) != 7 {
		t.Fatalf("faith quotes = %d", len(faith))
	}
	for _, q := range faith {
		if q.HasTag(content.TagSecular) {
			t.Fatalf("secular quote %s with faith allowed", q.ID)
		}
	}

	secular := c.LocalQuotes(false, 50)
	if len(secular) != 13 {
		t.Fatalf("secular quotes = %d", len(secular))
	}
	for _, q := range secular {
		if q.HasTag(content.TagFaith) {
			t.Fatalf("faith quote %s with faith denied", q.ID)
		}
	}

	if n := len(c.LocalQuotes(false, 0)); n != 1 {
		t.Fatalf("limit 0 should yield 1, got %d", n)
	}
	if n := len(c.LocalQuotes(false, -3)); n != 1 {
		t.Fatalf("negative limit should yield 1, got %d", n)
	}
}

func TestLocalScripture_Limit(t *testing.T) {
	c := MustLoad()
	if n := len(c.LocalScripture("gluttony", 0)); n != 1 {
		t.Fatalf("got %d", n)
	}
	if n := len(c.LocalScripture("nothing", 5)); n != 0 {
		t.Fatalf("got %d", n)
	}
}

func TestFallbackRotation(t *testing.T) {
	c := MustLoad()

	d, ok := c.FallbackDevotional("LOVE", 123)
	if !ok || d.Theme != "love" {
		t.Fatalf("theme match failed: %+v", d)
	}

	all := c.Devotionals()
	for day := 0; day < 12; day++ {
		got, _ := c.FallbackDevotional("unknown-theme", day)
		if got.Title != all[day%len(all)].Title {
			t.Fatalf("day %d picked %q", day, got.Title)
		}
	}

	a, _ := c.FallbackPrayer("", 42)
	b, _ := c.FallbackPrayer("", 42)
	if a != b {
		t.Fatalf("rotation is not deterministic")
	}
	p, _ := c.FallbackPrayer("heal", 7)
	if p.Theme != "healing" {
		t.Fatalf("prayer substring match failed: %+v", p)
	}
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_MasterOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, QuotesFile, `{"version":1,"metadata":{"total_quotes":1},"quotes":[{"id":"x1","text":"Hello","author":"Me"}]}`)

	c, err := Load(Options{Dir: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	qs := c.Quotes()
	if len(qs) != 1 || qs[0].License != content.LicensePublicDomain || qs[0].Source != content.SourceLocal || qs[0].Tags == nil {
		t.Fatalf("quotes = %+v", qs)
	}
	// scripture stays embedded when the directory has none
	if len(c.Passages("gluttony")) != 1 {
		t.Fatalf("embedded scripture lost")
	}
}

func TestLoad_ShardManifestInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shards/quotes_001.json", `{"version":1,"quotes":[{"id":"b","text":"second","author":"B"}]}`)
	writeFile(t, dir, "shards/quotes_000.json", `{"version":1,"quotes":[{"id":"a","text":"first","author":"A"}]}`)
	writeFile(t, dir, "quotes_002.json", `{"version":1,"quotes":[{"id":"c","text":"third","author":"C"}]}`)
	writeFile(t, dir, ManifestFile, `{"version":1,"shard_count":3,"files":["shards/quotes_000.json","shards/quotes_001.json","assets/quotes/shards/quotes_002.json"]}`)

	c, err := Load(Options{Dir: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	qs := c.Quotes()
	if len(qs) != 3 || qs[0].ID != "a" || qs[1].ID != "b" || qs[2].ID != "c" {
		t.Fatalf("shard order wrong: %+v", qs)
	}
}

func TestLoad_MissingShardFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestFile, `{"version":1,"shards":["nope.json"]}`)
	if _, err := Load(Options{Dir: dir}); err == nil {
		t.Fatalf("expected error for missing shard")
	}
}

func TestLoad_ScriptureOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ScriptureFile, `{"version":1,"themes":{" Pride ":[{"ref":"Proverbs 16:18 (KJV)","verses":[{"v":18,"t":"Pride goeth before destruction"}],"actNow":"Ask for help once today."}]}}`)

	c, err := Load(Options{Dir: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ps := c.Passages("pride")
	if len(ps) != 1 || ps[0].Source != content.SourceKJVLocal {
		t.Fatalf("passages = %+v", ps)
	}
	if len(c.Fallback()) != 5 {
		t.Fatalf("fallback should stay embedded")
	}
	if len(c.Quotes()) != 20 {
		t.Fatalf("quotes should stay embedded")
	}
}

func TestLoad_BadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, QuotesFile, `{`)
	if _, err := Load(Options{Dir: dir}); err == nil {
		t.Fatalf("expected parse error")
	}
}
