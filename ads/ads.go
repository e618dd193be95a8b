// Package ads injects third-party ad markup into a rendered post page.
//
// Two passes exist: in-content slots placed between content blocks, and one
// end-of-content slot appended into a placeholder. Each pass removes the
// markup it inserted before and then inserts fresh markup, so running it
// any number of times over the same document gives the same result.
package ads

import (
	"strings"
)

// DefaultScriptBase is the ad-network script host used when none is configured.
const DefaultScriptBase = "https://jsc.mgid.com/n/b"

// Markup identifiers shared with the post template.
const (
	ContentID              = "content-wp"
	EndOfContentID         = "adsEndWrapper"
	InContentWrapperClass  = "adsWrapper"
	EndContentWrapperClass = "adsEndWrapper"
)

// Slot is one configured ad placement: the element id the network script
// fills and the script that fills it.
type Slot struct {
	ID        string
	ScriptURL string
}

// Config enumerates the ad passes. A nil slot disables its pass.
type Config struct {
	InContent    *Slot
	EndOfContent *Slot
}

// NewSlot builds a slot whose script is "{base}/{src}.js". It returns nil
// when id or src is empty, which disables the pass.
func NewSlot(base, id, src string) *Slot {
	id = strings.TrimSpace(id)
	src = strings.TrimSpace(src)
	if id == "" || src == "" {
		return nil
	}
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultScriptBase
	}
	return &Slot{ID: id, ScriptURL: base + "/" + src + ".js"}
}

// Enabled reports whether any pass is configured.
func (c Config) Enabled() bool {
	return c.InContent != nil || c.EndOfContent != nil
}

// ScriptOrigins lists the distinct scheme://host origins of configured
// scripts, for use in a Content-Security-Policy.
func (c Config) ScriptOrigins() []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range []*Slot{c.InContent, c.EndOfContent} {
		if s == nil {
			continue
		}
		origin := originOf(s.ScriptURL)
		if origin == "" || seen[origin] {
			continue
		}
		seen[origin] = true
		out = append(out, origin)
	}
	return out
}

func originOf(raw string) string {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return ""
	}
	host, _, _ := strings.Cut(rest, "/")
	if host == "" {
		return ""
	}
	return scheme + "://" + host
}
