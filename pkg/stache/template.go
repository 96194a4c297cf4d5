package stache

import _ "embed"

// specTemplate is written verbatim to e2e/stache-search.e2e-spec.ts. When the
// site's e2e suite runs, it crawls every route and writes search.json.
//
//go:embed templates/stache-search.e2e-spec.ts
var specTemplate []byte

// SpecTemplate returns a copy of the embedded e2e spec.
func SpecTemplate() []byte {
	out := make([]byte, len(specTemplate))
	copy(out, specTemplate)
	return out
}
