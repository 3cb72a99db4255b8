// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package param implements the parameter-file contract: a line-oriented
// key=value text format, overridden by command-line key=value tokens,
// with read-access tracking so unused keys can be warned about (or cause
// an abort in strict mode) at shutdown.
package param

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Map is an immutable-after-load, access-recording configuration store.
// Keys match [A-Za-z0-9_.-]+; a [table] heading prefixes subsequent keys
// with "table.".
type Map struct {
	values map[string]string
	read   map[string]bool
	Strict bool // abort instead of warn on unread keys at shutdown
}

// New returns an empty Map.
func New() *Map {
	return &Map{
		values: make(map[string]string),
		read:   make(map[string]bool),
	}
}

// ReadFile loads a parameter file into the Map. Non-empty lines are either
// a "key = value" pair, a "#" or ";" comment, or a "[table]" heading.
// Duplicate headings and heading/key collisions are errors.
func (o *Map) ReadFile(fn string) (err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return chk.Err("param: cannot read file %q: %v", fn, err)
	}
	return o.parse(string(b))
}

func (o *Map) parse(text string) (err error) {
	table := ""
	seenTables := make(map[string]bool)
	for lineno, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return chk.Err("param: line %d: malformed table heading %q", lineno+1, raw)
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if err = validKey(name); err != nil {
				return chk.Err("param: line %d: %v", lineno+1, err)
			}
			if seenTables[name] {
				return chk.Err("param: line %d: duplicate table heading %q", lineno+1, name)
			}
			if _, exists := o.values[name]; exists {
				return chk.Err("param: line %d: table heading %q collides with a key", lineno+1, name)
			}
			seenTables[name] = true
			table = name
			continue
		}
		idx := strings.Index(line, "=")
		if idx < 0 {
			return chk.Err("param: line %d: expected key=value, got %q", lineno+1, raw)
		}
		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])
		if err = validKey(key); err != nil {
			return chk.Err("param: line %d: %v", lineno+1, err)
		}
		fullkey := key
		if table != "" {
			fullkey = table + "." + key
		}
		if _, exists := seenTables[fullkey]; exists {
			return chk.Err("param: line %d: key %q collides with a table heading", lineno+1, fullkey)
		}
		o.values[fullkey] = val
	}
	return nil
}

// Override applies a "key=value" command-line token over the file values.
func (o *Map) Override(token string) (err error) {
	idx := strings.Index(token, "=")
	if idx < 0 {
		return chk.Err("param: malformed override token %q (expected key=value)", token)
	}
	key := strings.TrimSpace(token[:idx])
	val := strings.TrimSpace(token[idx+1:])
	if err = validKey(key); err != nil {
		return err
	}
	o.values[key] = val
	return nil
}

func validKey(key string) error {
	if key == "" {
		return chk.Err("empty key")
	}
	for _, r := range key {
		ok := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
			r == '_' || r == '.' || r == '-'
		if !ok {
			return chk.Err("key %q contains invalid character %q", key, r)
		}
	}
	return nil
}

func (o *Map) lookup(key string) (string, bool) {
	o.read[key] = true
	v, ok := o.values[key]
	return v, ok
}

// Bool returns the boolean value of key ("true"/"false"), or def if absent.
func (o *Map) Bool(key string, def bool) bool {
	v, ok := o.lookup(key)
	if !ok {
		return def
	}
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	chk.Panic("param: key %q: %q is not a valid bool (want true/false)", key, v)
	return def
}

// Int returns the base-10 64-bit integer value of key, or def if absent.
func (o *Map) Int(key string, def int64) int64 {
	v, ok := o.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		chk.Panic("param: key %q: %q is not a valid integer", key, v)
	}
	return n
}

// Float returns the float64 value of key, or def if absent.
func (o *Map) Float(key string, def float64) float64 {
	v, ok := o.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		chk.Panic("param: key %q: %q is not a valid float", key, v)
	}
	return f
}

// String returns the raw string value of key, or def if absent.
func (o *Map) String(key string, def string) string {
	v, ok := o.lookup(key)
	if !ok {
		return def
	}
	return v
}

// RequireString is like String but panics (configuration error, §7) if the
// key is missing.
func (o *Map) RequireString(key string) string {
	v, ok := o.lookup(key)
	if !ok {
		chk.Panic("param: missing required key %q", key)
	}
	return v
}

// Unread returns the keys that were set but never read.
func (o *Map) Unread() (keys []string) {
	for k := range o.values {
		if !o.read[k] {
			keys = append(keys, k)
		}
	}
	return
}

// WarnUnused logs a warning for every unread key (or panics if Strict).
func (o *Map) WarnUnused() {
	unread := o.Unread()
	if len(unread) == 0 {
		return
	}
	if o.Strict {
		chk.Panic("param: unused keys in strict mode: %v", unread)
	}
	for _, k := range unread {
		io.Pfyel("param: warning: key %q was never read\n", k)
	}
}
