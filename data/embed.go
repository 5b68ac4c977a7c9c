// Package data embeds the vocabulary tables. Golden test files under
// golden/ are read from disk by package tests and are not embedded.
package data

import _ "embed"

//go:embed vocab.yaml
var Vocabulary []byte
