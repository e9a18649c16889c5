package manager

import (
	"os"

	"github.com/tidwall/gjson"
)

// ParseManifest reads a package.json and extracts the project name and
// its scripts table, preserving the order scripts were declared in.
//
// Parsing is deliberately tolerant: a missing file, unreadable file, or
// anything that is not a valid JSON object yields an empty name and no
// scripts. Detection must never fail because one manifest is broken.
func ParseManifest(path string) (name string, scripts []Script) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil
	}
	if !gjson.ValidBytes(data) {
		return "", nil
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return "", nil
	}

	if v := doc.Get("name"); v.Type == gjson.String {
		name = v.String()
	}

	// gjson iterates object members in document order, which is what
	// keeps the picker's script order matching the manifest.
	if s := doc.Get("scripts"); s.IsObject() {
		s.ForEach(func(key, value gjson.Result) bool {
			if value.Type == gjson.String {
				scripts = append(scripts, Script{Name: key.String(), Command: value.String()})
			}
			return true
		})
	}

	return name, scripts
}
