package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKvToArgs(t *testing.T) {
	t.Run("NoArgs", func(t *testing.T) {
		result := kvToArgs()
		assert.Equal(t, []any{}, result)
	})

	t.Run("OneArg", func(t *testing.T) {
		kv := KV{"key": "value"}
		result := kvToArgs(kv)
		assert.Equal(t, []any{"key", "value"}, result)
	})

	t.Run("MultipleArgs", func(t *testing.T) {
		kv1 := KV{"key1": "value1", "key2": "value2"}
		kv2 := KV{"key3": "value3"}
		result := kvToArgs(kv1, kv2)
		assert.Equal(t, []any{"key1", "value1", "key2", "value2"}, result)
	})

	t.Run("PickOnlyFirst", func(t *testing.T) {
		kv1 := KV{"key1": "value1"}
		kv2 := KV{"key2": "value2"}
		result := kvToArgs(kv1, kv2)
		assert.Equal(t, []any{"key1", "value1"}, result)
	})

	t.Run("Order", func(t *testing.T) {
		kv := KV{"z": "value1", "a": "value2"}
		result := kvToArgs(kv)
		assert.Equal(t, []any{"a", "value2", "z", "value1"}, result)
	})
}

func TestKvToArgsNs(t *testing.T) {
	t.Run("NoArgs", func(t *testing.T) {
		result := kvToArgsNs("namespace")
		assert.Equal(t, []any{"ns", "namespace"}, result)
	})

	t.Run("OneArg", func(t *testing.T) {
		kv := KV{"key": "value"}
		result := kvToArgsNs("namespace", kv)
		assert.Equal(t, []any{"ns", "namespace", "key", "value"}, result)
	})

	t.Run("MultipleArgs", func(t *testing.T) {
		kv1 := KV{"key1": "value1", "key2": "value2"}
		kv2 := KV{"key3": "value3"}
		result := kvToArgsNs("namespace", kv1, kv2)
		assert.Equal(t, []any{"ns", "namespace", "key1", "value1", "key2", "value2"}, result)
	})

	t.Run("PickOnlyFirst", func(t *testing.T) {
		kv1 := KV{"key1": "value1"}
		kv2 := KV{"key2": "value2"}
		result := kvToArgsNs("namespace", kv1, kv2)
		assert.Equal(t, []any{"ns", "namespace", "key1", "value1"}, result)
	})

	t.Run("Order", func(t *testing.T) {
		kv := KV{"z": "value1", "a": "value2"}
		result := kvToArgsNs("namespace", kv)
		assert.Equal(t, []any{"ns", "namespace", "a", "value2", "z", "value1"}, result)
	})
}

func TestLogger(t *testing.T) {
	t.Run("DebugHiddenByDefault", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.DebugNs(NsProbe, "hidden")
		logger.WarnNs(NsProbe, "shown", KV{"key": "value"})

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Contains(t, buf.String(), `"key":"value"`)
	})

	t.Run("DebugEnabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, true)
		logger.DebugNs(NsProbe, "visible")

		assert.Contains(t, buf.String(), `"ns":"probe"`)
		assert.Contains(t, buf.String(), `"msg":"visible"`)
	})

	t.Run("RunID", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, false).WithRunID()
		logger.WarnNs(NsBackend, "first")
		logger.WarnNs(NsBackend, "second")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 2)

		var first, second map[string]any
		assert.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
		assert.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
		assert.NotEmpty(t, first["run_id"])
		assert.Equal(t, first["run_id"], second["run_id"])
	})

	t.Run("Discard", func(t *testing.T) {
		logger := NewDiscardLogger()
		assert.NotPanics(t, func() { logger.WarnNs(NsFeatures, "dropped") })
	})
}
