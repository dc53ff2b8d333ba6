// Package config handles loading, validating, and writing the kitchen
// configuration file for the lasagna-timer CLI.
//
// Two formats are accepted, chosen by file extension:
//
//   - YAML (.yaml, .yml), parsed with gopkg.in/yaml.v3
//   - JSON with comments (.json, .jsonc), stripped with
//     github.com/tidwall/jsonc and parsed with encoding/json
//
// Every field is optional. A missing field keeps the built-in default, so
// an absent config file behaves exactly like an empty one.
package config
