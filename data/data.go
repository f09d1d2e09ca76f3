// Package data embeds the static meal catalog: one collection per category,
// each a JSON mapping of meal name to nutrition, cost and dietary flags.
package data

import _ "embed"

//go:embed breakfasts.json
var Breakfasts []byte

//go:embed lunches.json
var Lunches []byte

//go:embed dinners.json
var Dinners []byte
