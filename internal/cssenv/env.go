// Package cssenv is a headless rendering environment: it answers the
// style-support query a browser would answer, using a CSS tokenizer and a
// per-property value grammar instead of a layout engine.
package cssenv

import (
	"regexp"
	"strings"

	"github.com/yacobolo/stylewarn"
	"go.uber.org/zap"
)

var (
	upperPattern = regexp.MustCompile(`([A-Z])`)
	msPattern    = regexp.MustCompile(`^ms-`)
)

var vendorPrefixes = []string{"-webkit-", "-moz-", "-ms-", "-o-"}

// Environment implements stylewarn.StyleSupport.
type Environment struct {
	log        *zap.Logger
	properties map[string]grammar
}

// New creates an environment that knows the built-in property table.
func New(log *zap.Logger) *Environment {
	if log == nil {
		log = zap.NewNop()
	}
	return &Environment{
		log:        log.Named("cssenv"),
		properties: properties,
	}
}

// NewScratchElement returns an empty declaration block.
func (e *Environment) NewScratchElement() stylewarn.ScratchElement {
	return &Declaration{env: e, values: make(map[string]string)}
}

// Known reports whether the environment recognizes a property key,
// vendor-prefixed or not.
func (e *Environment) Known(key string) bool {
	_, ok := e.lookup(key)
	return ok || stylewarn.IsCustomProperty(key)
}

func (e *Environment) lookup(key string) (grammar, bool) {
	if g, ok := e.properties[key]; ok {
		return g, true
	}
	for _, prefix := range vendorPrefixes {
		if base, ok := strings.CutPrefix(key, prefix); ok {
			g, ok := e.properties[base]
			return g, ok
		}
	}
	return grammar{}, false
}

// Supports reports whether value is valid for the property key. Unknown
// properties are unsupported, custom properties accept any well-formed value.
func (e *Environment) Supports(property, value string) bool {
	property = strings.TrimSpace(property)
	if property == "" {
		return false
	}

	groups, ok := tokenize(value)
	if !ok || len(groups) == 0 {
		e.log.Debug("value does not tokenize", zap.String("property", property), zap.String("value", value))
		return false
	}

	if stylewarn.IsCustomProperty(property) {
		return true
	}

	g, known := e.lookup(strings.ToLower(property))
	if !known {
		e.log.Debug("unknown property", zap.String("property", property))
		return false
	}

	// A lone CSS-wide keyword is valid everywhere.
	if len(groups) == 1 && len(groups[0]) == 1 && groups[0][0].tt == identComponent &&
		cssWideKeywords[groups[0][0].text] {
		return true
	}

	// var() defers validation to computed-value time.
	for _, group := range groups {
		for _, c := range group {
			if c.fn == "var" || c.fn == "env" || c.fn == "attr" {
				return true
			}
		}
	}

	return g.match(groups)
}

// PropertyKey maps a DOM-style property name to its CSS key:
// backgroundColor to background-color, WebkitTransform to -webkit-transform,
// msTransform to -ms-transform. Hyphenated names are only lower-cased and
// custom properties are returned unchanged.
func PropertyKey(name string) string {
	if stylewarn.IsCustomProperty(name) {
		return name
	}
	if strings.Contains(name, "-") {
		return strings.ToLower(name)
	}
	key := strings.ToLower(upperPattern.ReplaceAllString(name, "-$1"))
	return msPattern.ReplaceAllString(key, "-ms-")
}

// Declaration is an unrendered element's inline style.
type Declaration struct {
	env    *Environment
	keys   []string
	values map[string]string
}

// SetStyle assigns a property. Like a browser, it ignores unknown properties
// and values the property does not accept, and an empty value removes it.
func (d *Declaration) SetStyle(name, value string) {
	key := PropertyKey(name)
	if !d.env.Known(key) {
		return
	}

	if strings.TrimSpace(value) == "" {
		d.remove(key)
		return
	}
	if !d.env.Supports(key, value) {
		return
	}

	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = strings.TrimSpace(value)
}

func (d *Declaration) remove(key string) {
	if _, exists := d.values[key]; !exists {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Item returns the key of the index-th applied property, or "".
func (d *Declaration) Item(index int) string {
	if index < 0 || index >= len(d.keys) {
		return ""
	}
	return d.keys[index]
}

// Len returns the number of applied properties.
func (d *Declaration) Len() int {
	return len(d.keys)
}

// Value returns the applied value for a key, or "".
func (d *Declaration) Value(key string) string {
	return d.values[key]
}

// CSSText serializes the block as "key: value; key2: value2;".
func (d *Declaration) CSSText() string {
	parts := make([]string, 0, len(d.keys))
	for _, k := range d.keys {
		parts = append(parts, k+": "+d.values[k]+";")
	}
	return strings.Join(parts, " ")
}
