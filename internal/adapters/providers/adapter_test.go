package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentgate/internal/core/content"
	"contentgate/internal/platform/config"
)

// upstream serves canned payloads for every provider under /<name>/...
func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	js := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}
	}
	mux.HandleFunc("/quotable/search/quotes", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hope", r.URL.Query().Get("query"))
		js(`{"results":[{"_id":"abc","content":" Hope is a waking dream. ","author":"Aristotle","tags":["hope"]}]}`)(w, r)
	})
	mux.HandleFunc("/quotable/quotes/random", js(`[{"_id":"r1","content":"Random words","author":"","tags":[]}]`))
	mux.HandleFunc("/zen/quotes", js(`[{"q":"Act without expectation.","a":"Lao Tzu"},{"q":"","a":"skip"}]`))
	mux.HandleFunc("/garden/quotes", js(`{"data":[{"_id":"g1","quoteText":"Courage is grace under pressure.","quoteAuthor":"Hemingway","quoteGenre":"courage"}]}`))
	mux.HandleFunc("/sapi/api/random", js(`{"reference":"Psalm 23:1","text":"The LORD is my shepherd; I shall not want."}`))
	mux.HandleFunc("/bible/", func(w http.ResponseWriter, r *http.Request) {
		ref := strings.TrimPrefix(r.URL.Path, "/bible/")
		js(`{"reference":"` + ref + `","text":"verse text\n"}`)(w, r)
	})
	mux.HandleFunc("/labs/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("passage") == "votd" {
			_, _ = w.Write([]byte("John 3:16 - For God so loved the world"))
			return
		}
		js(`[{"bookname":"Romans","chapter":"8","verse":"28","text":"And we know that all things work together for good"}]`)(w, r)
	})
	mux.HandleFunc("/votd/votd/get/", js(`{"votd":{"display_ref":"Isaiah 40:31","content":"&ldquo;But they that wait upon the <b>LORD</b> shall renew their strength&rdquo;"}}`))
	mux.HandleFunc("/prayer/api/daily", js(`[{"title":"Evening","text":"Keep me tonight.","topic":"rest"}]`))
	mux.HandleFunc("/devo/api/daily", js(`{"title":"Hope","verse":"Romans 15:13","content":"Hope is a gift.","prayer":"Fill me with hope."}`))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testRegistry(base string) *Registry {
	pd := content.LicensePublicDomain
	return NewRegistry(
		Provider{Quotable, KindQuotes, base + "/quotable", pd, true},
		Provider{ZenQuotes, KindQuotes, base + "/zen", pd, true},
		Provider{QuoteGarden, KindQuotes, base + "/garden", pd, true},
		Provider{ScriptureAPI, KindScripture, base + "/sapi", pd, true},
		Provider{BibleAPI, KindScripture, base + "/bible", pd, true},
		Provider{LabsBible, KindScripture, base + "/labs", pd, true},
		Provider{BibleGatewayVOTD, KindScripture, base + "/votd", pd, true},
		Provider{PrayerAPI, KindDevotional, base + "/prayer", pd, true},
		Provider{DevotionalAPI, KindDevotional, base + "/devo", pd, true},
	)
}

func testAdapter(t *testing.T) *Adapter {
	srv := upstream(t)
	nop := zerolog.Nop()
	return New(Options{
		Registry: testRegistry(srv.URL),
		Client:   NewClient(ClientOptions{RetryBase: time.Millisecond}),
		Enabled:  true,
		Timeout:  2 * time.Second,
		Log:      &nop,
	})
}

func TestAdapter_QuotesNormalizeInRegistryOrder(t *testing.T) {
	a := testAdapter(t)

	got := a.Quotes(context.Background(), false, "hope", 10)
	require.Len(t, got, 3)

	assert.Equal(t, "quotable:abc", got[0].ID)
	assert.Equal(t, "Hope is a waking dream.", got[0].Text)
	assert.Equal(t, content.SourceExternal, got[0].Source)
	assert.Equal(t, content.LicensePublicDomain, got[0].License)
	require.NotNil(t, got[0].AttributionURL)

	assert.Equal(t, "zenquotes:"+QuoteID(ZenQuotes, "Act without expectation."), got[1].ID)
	assert.Equal(t, "Lao Tzu", got[1].Author)

	assert.Equal(t, "quotegarden:g1", got[2].ID)
	assert.Equal(t, []string{"courage"}, got[2].Tags)
}

func TestAdapter_QuotesRandomAndUnknownAuthor(t *testing.T) {
	a := testAdapter(t)
	got := a.Quotes(context.Background(), true, "", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Unknown", got[0].Author)
	assert.NotNil(t, got[0].Tags)
}

func TestAdapter_ScriptureGatedAndNormalized(t *testing.T) {
	a := testAdapter(t)

	assert.Empty(t, a.Scripture(context.Background(), false, "hope", 5))

	got := a.Scripture(context.Background(), true, "hope", 10)
	var refs []string
	for _, p := range got {
		refs = append(refs, p.Ref)
		assert.Len(t, p.Verses, 1)
		assert.LessOrEqual(t, len([]rune(p.ActNow)), 140)
	}
	// scripture_api, then bible_api verses, then labs votd + randoms, then votd
	require.GreaterOrEqual(t, len(got), 4)
	assert.Equal(t, "Psalm 23:1", refs[0])
	assert.Equal(t, ScriptureAPI, got[0].Source)
	assert.Equal(t, 1, got[0].Verses[0].V)

	var votd content.ScripturePassage
	for _, p := range got {
		if p.Source == BibleGatewayVOTD {
			votd = p
		}
	}
	assert.Equal(t, "Isaiah 40:31", votd.Ref)
	assert.Equal(t, 31, votd.Verses[0].V)
	assert.Equal(t, "“But they that wait upon the LORD shall renew their strength”", votd.Verses[0].T)
}

func TestAdapter_ScriptureLimit(t *testing.T) {
	a := testAdapter(t)
	got := a.Scripture(context.Background(), true, "", 2)
	require.Len(t, got, 2)
	assert.Equal(t, ScriptureAPI, got[0].Source)
	assert.Equal(t, BibleAPI, got[1].Source)
	assert.Equal(t, "verse text", got[1].Verses[0].T)
	assert.Contains(t, got[0].ActNow, "faith")
}

func TestAdapter_DevotionalsAndPrayers(t *testing.T) {
	a := testAdapter(t)
	ctx := context.Background()

	assert.Empty(t, a.Devotionals(ctx, false, "", 1))
	assert.Empty(t, a.Prayers(ctx, false, "", 1))

	ds := a.Devotionals(ctx, true, "hope", 5)
	require.Len(t, ds, 1)
	assert.Equal(t, "Romans 15:13", ds[0].Scripture)
	assert.Equal(t, "Hope is a gift.", ds[0].Reflection)
	assert.Equal(t, "hope", ds[0].Theme)
	assert.Equal(t, DevotionalAPI, ds[0].Source)

	ps := a.Prayers(ctx, true, "", 5)
	require.Len(t, ps, 1)
	assert.Equal(t, "Keep me tonight.", ps[0].Prayer)
	assert.Equal(t, "rest", ps[0].Theme)
}

func TestAdapter_DisabledShortCircuits(t *testing.T) {
	a := New(Options{Registry: testRegistry("http://127.0.0.1:1"), Enabled: false})
	ctx := context.Background()
	assert.Empty(t, a.Quotes(ctx, true, "x", 5))
	assert.Empty(t, a.Scripture(ctx, true, "x", 5))
	assert.Empty(t, a.Devotionals(ctx, true, "x", 5))
	assert.Empty(t, a.Prayers(ctx, true, "x", 5))
}

func TestGather_SlowProviderDoesNotStallOthers(t *testing.T) {
	ps := []Provider{{Name: "slow"}, {Name: "fast"}, {Name: "boom"}}
	start := time.Now()
	got := Gather(context.Background(), zerolog.Nop(), ps, 50*time.Millisecond, 10,
		func(ctx context.Context, p Provider) ([]string, error) {
			switch p.Name {
			case "slow":
				<-ctx.Done()
				return nil, ctx.Err()
			case "boom":
				panic("provider exploded")
			}
			return []string{"a", "b"}, nil
		})
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestGather_OrderAndLimit(t *testing.T) {
	ps := []Provider{{Name: "one"}, {Name: "two"}}
	got := Gather(context.Background(), zerolog.Nop(), ps, time.Second, 3,
		func(_ context.Context, p Provider) ([]string, error) {
			if p.Name == "one" {
				time.Sleep(20 * time.Millisecond)
				return []string{"1a", "1b"}, nil
			}
			return []string{"2a", "2b"}, nil
		})
	assert.Equal(t, []string{"1a", "1b", "2a"}, got)

	assert.Nil(t, Gather[string](context.Background(), zerolog.Nop(), nil, time.Second, 3, nil))
}

func TestRegistry_EnvOverrides(t *testing.T) {
	t.Setenv("PROVIDER_ZENQUOTES_ENABLED", "0")
	t.Setenv("PROVIDER_LABS_BIBLE_BASE_URL", "http://labs.local/api/")

	r := RegistryFromConfig(config.New())
	st := r.Status()
	assert.Len(t, st, 9)
	assert.False(t, st[ZenQuotes])
	assert.True(t, st[Quotable])

	var labs Provider
	for _, p := range r.All() {
		if p.Name == LabsBible {
			labs = p
		}
	}
	assert.Equal(t, "http://labs.local/api", labs.BaseURL)

	qs := r.Enabled(KindQuotes)
	require.Len(t, qs, 2)
	assert.Equal(t, Quotable, qs[0].Name)
	assert.Equal(t, QuoteGarden, qs[1].Name)
}

func TestVerseNumber(t *testing.T) {
	assert.Equal(t, 16, verseNumber("John 3:16"))
	assert.Equal(t, 5, verseNumber("Proverbs 3:5-6 (KJV)"))
	assert.Equal(t, 1, verseNumber("Psalm 23"))
}

func TestAdapter_StatusFollowsMasterSwitch(t *testing.T) {
	reg := NewRegistry(Defaults()...)
	on := New(Options{Registry: reg, Enabled: true}).Status()
	off := New(Options{Registry: reg, Enabled: false}).Status()
	assert.True(t, on[Quotable])
	assert.False(t, off[Quotable])
	assert.Len(t, off, 9)
}
