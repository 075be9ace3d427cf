// Package raw reads environment variables without logging so the logger can bootstrap from it
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Env is a key prefix such as "LOG_"; the empty Env reads keys as given
type Env string

func (e Env) lookup(key string) string { return strings.TrimSpace(os.Getenv(string(e) + key)) }

// String returns the trimmed value or def when unset or blank
func (e Env) String(key, def string) string {
	if v := e.lookup(key); v != "" {
		return v
	}
	return def
}

// Bool accepts strconv.ParseBool forms plus yes and no; anything else is def
func (e Env) Bool(key string, def bool) bool {
	v := strings.ToLower(e.lookup(key))
	switch v {
	case "":
		return def
	case "yes":
		return true
	case "no":
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Int returns a base 10 integer; unparsable values are def
func (e Env) Int(key string, def int) int {
	n, err := strconv.Atoi(e.lookup(key))
	if err != nil {
		return def
	}
	return n
}
