package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"contentgate/internal/core/content"
	pstrings "contentgate/internal/platform/strings"
)

// oneOrMany decodes a JSON object or array of objects into a slice
func oneOrMany[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var xs []T
		err := json.Unmarshal(raw, &xs)
		return xs, err
	}
	var x T
	if err := json.Unmarshal(raw, &x); err != nil {
		return nil, err
	}
	return []T{x}, nil
}

type rawPrayer struct {
	Title  string `json:"title"`
	Prayer string `json:"prayer"`
	Text   string `json:"text"`
	Theme  string `json:"theme"`
	Topic  string `json:"topic"`
}

func fetchPrayerAPI(ctx context.Context, c *Client, p Provider, theme string, _ int) ([]content.Prayer, error) {
	var raw json.RawMessage
	if err := c.GetJSON(ctx, p.BaseURL+"/api/daily", &raw); err != nil {
		return nil, err
	}
	xs, err := oneOrMany[rawPrayer](raw)
	if err != nil {
		return nil, err
	}
	out := make([]content.Prayer, 0, len(xs))
	for _, x := range xs {
		body := pstrings.FirstNonEmpty(x.Prayer, x.Text)
		if body == "" {
			continue
		}
		out = append(out, content.Prayer{
			Title:  pstrings.FirstNonEmpty(x.Title, "Daily Prayer"),
			Prayer: body,
			Theme:  pstrings.FirstNonEmpty(x.Theme, x.Topic, theme),
			Source: p.Name,
		})
	}
	return out, nil
}

type rawDevotional struct {
	Title      string `json:"title"`
	Scripture  string `json:"scripture"`
	Verse      string `json:"verse"`
	Reflection string `json:"reflection"`
	Content    string `json:"content"`
	Prayer     string `json:"prayer"`
	Theme      string `json:"theme"`
}

func fetchDevotionalAPI(ctx context.Context, c *Client, p Provider, theme string, _ int) ([]content.Devotional, error) {
	var raw json.RawMessage
	if err := c.GetJSON(ctx, p.BaseURL+"/api/daily", &raw); err != nil {
		return nil, err
	}
	xs, err := oneOrMany[rawDevotional](raw)
	if err != nil {
		return nil, err
	}
	out := make([]content.Devotional, 0, len(xs))
	for _, x := range xs {
		reflection := pstrings.FirstNonEmpty(x.Reflection, x.Content)
		if reflection == "" {
			continue
		}
		out = append(out, content.Devotional{
			Title:      pstrings.FirstNonEmpty(x.Title, "Daily Devotional"),
			Scripture:  pstrings.FirstNonEmpty(x.Scripture, x.Verse),
			Reflection: reflection,
			Prayer:     strings.TrimSpace(x.Prayer),
			Theme:      pstrings.FirstNonEmpty(x.Theme, theme),
			Source:     p.Name,
		})
	}
	return out, nil
}
