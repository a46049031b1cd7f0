// Package lore loads the interpretive vocabulary (body themes, sign tones, house meanings)
// from the embedded lore.json and validates that every body, sign and house is covered
package lore

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ajitrahul/chetna-sub000/internal/core/zodiac"
)

//go:embed lore.json
var embedded []byte

type rawBody struct {
	Theme    string   `json:"theme"`
	Keywords []string `json:"keywords,omitempty"`
}

type rawSign struct {
	Tone string `json:"tone"`
}

type rawPack struct {
	Version int                `json:"version"`
	Meta    map[string]any     `json:"meta"`
	Bodies  map[string]rawBody `json:"bodies"`
	Signs   map[string]rawSign `json:"signs"`
	Houses  []string           `json:"houses"`
}

// Pack is the validated vocabulary, indexed by body, sign and house
type Pack struct {
	Version  int
	Meta     map[string]any
	themes   [zodiac.BodyCount]string
	keywords [zodiac.BodyCount][]string
	tones    [12]string
	houses   [12]string
}

// Load parses and validates the embedded lore.json
func Load() (*Pack, error) { return Parse(embedded) }

// Parse builds a pack from raw JSON
func Parse(raw []byte) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(raw, &rp); err != nil {
		return nil, fmt.Errorf("lore: parse lore.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("lore: unsupported lore.json version %d (want 1)", rp.Version)
	}

	p := &Pack{Version: rp.Version, Meta: rp.Meta}
	for name, b := range rp.Bodies {
		body, err := zodiac.ParseBody(name)
		if err != nil {
			return nil, fmt.Errorf("lore: bodies: %w", err)
		}
		p.themes[body] = b.Theme
		p.keywords[body] = b.Keywords
	}
	for name, s := range rp.Signs {
		sign, err := zodiac.ParseSign(name)
		if err != nil {
			return nil, fmt.Errorf("lore: signs: %w", err)
		}
		p.tones[sign] = s.Tone
	}
	if len(rp.Houses) != 12 {
		return nil, fmt.Errorf("lore: %d house meanings, want 12", len(rp.Houses))
	}
	copy(p.houses[:], rp.Houses)

	// completeness
	for _, b := range zodiac.Bodies() {
		if p.themes[b] == "" {
			return nil, fmt.Errorf("lore: no theme for %s", b)
		}
	}
	for s := zodiac.Aries; s <= zodiac.Pisces; s++ {
		if p.tones[s] == "" {
			return nil, fmt.Errorf("lore: no tone for %s", s)
		}
	}
	for i, h := range p.houses {
		if h == "" {
			return nil, fmt.Errorf("lore: no meaning for house %d", i+1)
		}
	}
	return p, nil
}

var (
	defOnce sync.Once
	defPack *Pack
)

// Default returns the embedded pack, loaded once. The embedded file is validated by tests,
// so a failure here is a build defect
func Default() *Pack {
	defOnce.Do(func() {
		p, err := Load()
		if err != nil {
			panic(err)
		}
		defPack = p
	})
	return defPack
}

// Theme returns the core theme of b
func (p *Pack) Theme(b zodiac.Body) string {
	if !b.Valid() {
		return ""
	}
	return p.themes[b]
}

// Keywords returns a copy of b's keywords
func (p *Pack) Keywords(b zodiac.Body) []string {
	if !b.Valid() {
		return nil
	}
	return append([]string(nil), p.keywords[b]...)
}

// Tone returns the tone label of sign s
func (p *Pack) Tone(s zodiac.Sign) string { return p.tones[s%12] }

// House returns the meaning of house h (1..12), or "" when out of range
func (p *Pack) House(h int) string {
	if h < 1 || h > 12 {
		return ""
	}
	return p.houses[h-1]
}
