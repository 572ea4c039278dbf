package log

import "sort"

// KV is a set of key-value pairs attached to a log entry.
type KV map[string]any

// Namespaces used across the probe tools.
const (
	NsProbe    = "probe"
	NsBackend  = "backend"
	NsFeatures = "features"
)

// kvToArgs flattens the first KV into slog args, sorted by key so that
// entries are stable between runs.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}
	if len(keyVals) == 0 {
		return args
	}

	kv := keyVals[0]
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		args = append(args, k, kv[k])
	}
	return args
}

// kvToArgsNs is kvToArgs with the namespace as the leading pair.
func kvToArgsNs(namespace string, keyVals ...KV) []any {
	return append([]any{"ns", namespace}, kvToArgs(keyVals...)...)
}
