// Package domain holds the request DTOs, manifest shape and ports for content
package domain

import (
	"strings"

	"contentgate/internal/core/content"
	"contentgate/internal/core/faith"
)

// Default result counts when a request omits limit
const (
	DefaultQuoteLimit     = 5
	DefaultScriptureLimit = 1
)

type (
	// QuoteItem re-exports the shared content type
	QuoteItem = content.QuoteItem
	// ScripturePassage re-exports the shared content type
	ScripturePassage = content.ScripturePassage
	// Devotional re-exports the shared content type
	Devotional = content.Devotional
	// Prayer re-exports the shared content type
	Prayer = content.Prayer
)

// Gate is the faith triple every content request carries
type Gate struct {
	FaithMode               string `json:"faithMode" validate:"required,oneof=off light disciple kingdom" example:"light"`
	LightConsentGiven       bool   `json:"lightConsentGiven" example:"true"`
	HideFaithOverlaysInMind bool   `json:"hideFaithOverlaysInMind" example:"false"`
}

// Mode returns the parsed faith mode; invalid input yields "" which the gate denies
func (g Gate) Mode() faith.Mode {
	m, _ := faith.ParseMode(g.FaithMode)
	return m
}

// QuoteRequest is the body of POST /content/quotes, /devotionals and /prayers
type QuoteRequest struct {
	Gate
	Topic string `json:"topic" validate:"max=200" example:"temperance"`
	Limit *int   `json:"limit,omitempty" example:"5"`
}

// ScriptureRequest is the body of POST /content/scripture and /scripture/daily
type ScriptureRequest struct {
	Gate
	Theme string `json:"theme" validate:"max=200" example:"gluttony"`
	Limit *int   `json:"limit,omitempty" example:"1"`
}

// Normalized is the canonical request form used for cache keys
type Normalized struct {
	FaithMode  string `json:"faithMode"`
	Consent    bool   `json:"lightConsentGiven"`
	Hide       bool   `json:"hideFaithOverlaysInMind"`
	Topic      string `json:"topic"`
	Limit      int    `json:"limit"`
	AllowFaith bool   `json:"allowFaith"`
}

// Normalize trims the topic and resolves the limit to max(1, limit or def)
func (q QuoteRequest) Normalize() Normalized {
	return normalized(q.Gate, q.Topic, q.Limit, DefaultQuoteLimit)
}

// Normalize trims and lowercases the theme and resolves the limit
func (s ScriptureRequest) Normalize() Normalized {
	n := normalized(s.Gate, s.Theme, s.Limit, DefaultScriptureLimit)
	n.Topic = strings.ToLower(n.Topic)
	return n
}

func normalized(g Gate, topic string, limit *int, def int) Normalized {
	n := def
	if limit != nil {
		n = *limit
	}
	if n < 1 {
		n = 1
	}
	return Normalized{
		FaithMode: g.FaithMode,
		Consent:   g.LightConsentGiven,
		Hide:      g.HideFaithOverlaysInMind,
		Topic:     strings.TrimSpace(topic),
		Limit:     n,
	}
}
