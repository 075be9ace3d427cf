package providers

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"contentgate/internal/core/content"
)

const unknownAuthor = "Unknown"

type quotableQuote struct {
	ID      string   `json:"_id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

func fetchQuotable(ctx context.Context, c *Client, p Provider, topic string, limit int) ([]content.QuoteItem, error) {
	var raw []quotableQuote
	if topic != "" {
		var page struct {
			Results []quotableQuote `json:"results"`
		}
		u := p.BaseURL + "/search/quotes?query=" + url.QueryEscape(topic) + "&limit=" + strconv.Itoa(limit)
		if err := c.GetJSON(ctx, u, &page); err != nil {
			return nil, err
		}
		raw = page.Results
	} else {
		if err := c.GetJSON(ctx, p.BaseURL+"/quotes/random?limit="+strconv.Itoa(limit), &raw); err != nil {
			return nil, err
		}
	}
	out := make([]content.QuoteItem, 0, len(raw))
	for _, q := range raw {
		out = appendQuote(out, p, q.ID, q.Content, q.Author, q.Tags)
	}
	return out, nil
}

type zenQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
}

func fetchZenQuotes(ctx context.Context, c *Client, p Provider, _ string, _ int) ([]content.QuoteItem, error) {
	var raw []zenQuote
	if err := c.GetJSON(ctx, p.BaseURL+"/quotes", &raw); err != nil {
		return nil, err
	}
	out := make([]content.QuoteItem, 0, len(raw))
	for _, q := range raw {
		out = appendQuote(out, p, "", q.Q, q.A, nil)
	}
	return out, nil
}

type gardenQuote struct {
	ID     string `json:"_id"`
	Text   string `json:"quoteText"`
	Author string `json:"quoteAuthor"`
	Genre  string `json:"quoteGenre"`
}

func fetchQuoteGarden(ctx context.Context, c *Client, p Provider, topic string, _ int) ([]content.QuoteItem, error) {
	u := p.BaseURL + "/quotes/random"
	if topic != "" {
		u = p.BaseURL + "/quotes?genre=" + url.QueryEscape(topic)
	}
	var page struct {
		Data []gardenQuote `json:"data"`
	}
	if err := c.GetJSON(ctx, u, &page); err != nil {
		return nil, err
	}
	out := make([]content.QuoteItem, 0, len(page.Data))
	for _, q := range page.Data {
		var tags []string
		if g := strings.TrimSpace(q.Genre); g != "" {
			tags = []string{g}
		}
		out = appendQuote(out, p, q.ID, q.Text, q.Author, tags)
	}
	return out, nil
}

// appendQuote normalizes one upstream quote; ids are namespaced by provider
// and derived from the text when the upstream has none
func appendQuote(out []content.QuoteItem, p Provider, id, text, author string, tags []string) []content.QuoteItem {
	text = strings.TrimSpace(text)
	if text == "" {
		return out
	}
	if id == "" {
		id = QuoteID(p.Name, text)
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = unknownAuthor
	}
	if tags == nil {
		tags = []string{}
	}
	attribution := p.BaseURL
	return append(out, content.QuoteItem{
		ID:             p.Name + ":" + id,
		Text:           text,
		Author:         author,
		License:        p.License,
		Source:         content.SourceExternal,
		Tags:           tags,
		AttributionURL: &attribution,
	})
}

// QuoteID is a stable UUIDv5 for a provider quote without its own id
func QuoteID(provider, text string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(provider+"\x00"+text)).String()
}
