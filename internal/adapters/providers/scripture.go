package providers

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"contentgate/internal/core/content"
)

// verses tried in order by bible_api_wldeh; its random endpoint is unreliable
var popularVerses = []string{
	"john+3:16", "psalm+23:1", "jeremiah+29:11", "philippians+4:13",
	"romans+8:28", "proverbs+3:5", "matthew+11:28", "isaiah+40:31",
}

type refText struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

func fetchBibleAPI(ctx context.Context, c *Client, p Provider, theme string, limit int) ([]content.ScripturePassage, error) {
	var out []content.ScripturePassage
	var firstErr error
	for _, ref := range popularVerses[:min(limit, len(popularVerses))] {
		var rt refText
		if err := c.GetJSON(ctx, p.BaseURL+"/"+ref, &rt); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = appendPassage(out, p, rt.Reference, rt.Text, "Meditate on this scripture for "+themeOr(theme)+".")
	}
	if len(out) == 0 {
		return nil, firstErr
	}
	return out, nil
}

func fetchScriptureAPI(ctx context.Context, c *Client, p Provider, theme string, _ int) ([]content.ScripturePassage, error) {
	var rt refText
	if err := c.GetJSON(ctx, p.BaseURL+"/api/random", &rt); err != nil {
		return nil, err
	}
	return appendPassage(nil, p, rt.Reference, rt.Text, "Apply this scripture to your "+themeOr(theme)+" journey."), nil
}

func fetchLabsBible(ctx context.Context, c *Client, p Provider, theme string, limit int) ([]content.ScripturePassage, error) {
	body, err := c.GetText(ctx, p.BaseURL+"/?passage=votd&formatting=plain")
	if err != nil {
		return nil, err
	}
	out := appendLabs(nil, p, body, "Reflect on "+themeOr(theme)+" through this scripture today.")

	for i := 0; i < min(limit-1, 2); i++ {
		body, err := c.GetText(ctx, p.BaseURL+"/?passage=random&formatting=plain")
		if err != nil {
			break
		}
		out = appendLabs(out, p, body, "Apply this wisdom to your "+themeOr(theme)+" journey.")
	}
	return out, nil
}

type labsVerse struct {
	BookName string `json:"bookname"`
	Chapter  string `json:"chapter"`
	Verse    string `json:"verse"`
	Text     string `json:"text"`
}

// appendLabs accepts the plain "Ref - text" body or the JSON verse array
func appendLabs(out []content.ScripturePassage, p Provider, body, actNow string) []content.ScripturePassage {
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, "[") {
		var vs []labsVerse
		if err := json.Unmarshal([]byte(body), &vs); err != nil || len(vs) == 0 {
			return out
		}
		v := vs[0]
		ref := v.BookName + " " + v.Chapter + ":" + v.Verse
		return appendPassage(out, p, ref, textOf(v.Text), actNow)
	}
	ref, text, ok := strings.Cut(body, " - ")
	if !ok {
		return out
	}
	return appendPassage(out, p, ref, text, actNow)
}

func fetchBibleGatewayVOTD(ctx context.Context, c *Client, p Provider, theme string, _ int) ([]content.ScripturePassage, error) {
	var doc struct {
		VOTD struct {
			DisplayRef string `json:"display_ref"`
			Content    string `json:"content"`
		} `json:"votd"`
	}
	if err := c.GetJSON(ctx, p.BaseURL+"/votd/get/?format=json&version=KJV", &doc); err != nil {
		return nil, err
	}
	return appendPassage(nil, p, doc.VOTD.DisplayRef, textOf(doc.VOTD.Content), "Reflect on this daily verse for "+themeOr(theme)+"."), nil
}

// appendPassage builds a one-verse passage; the verse number comes from the reference when present
func appendPassage(out []content.ScripturePassage, p Provider, ref, text, actNow string) []content.ScripturePassage {
	ref, text = strings.TrimSpace(ref), strings.TrimSpace(text)
	if ref == "" || text == "" {
		return out
	}
	return append(out, content.ScripturePassage{
		Ref:     ref,
		Verses:  []content.Verse{{V: verseNumber(ref), T: text}},
		ActNow:  actNow,
		License: p.License,
		Source:  p.Name,
	})
}

// verseNumber reads N from "Book C:N" or "Book C:N-M"; 1 otherwise
func verseNumber(ref string) int {
	_, after, ok := strings.Cut(ref, ":")
	if !ok {
		return 1
	}
	end := 0
	for end < len(after) && after[end] >= '0' && after[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(after[:end])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// textOf strips markup and decodes entities from an HTML fragment
func textOf(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			b.WriteByte(' ')
		}
	}
}

func themeOr(theme string) string {
	if t := strings.TrimSpace(theme); t != "" {
		return t
	}
	return "faith"
}
