package features

import (
	"encoding/json"
	"testing"

	"github.com/nsqlite/sqliteprobe/internal/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func report(version, threadSafe int, options ...string) probe.Report {
	return probe.Report{
		VersionNumber: version,
		ThreadSafety:  threadSafe,
		Options:       options,
	}
}

func TestThreadingFromCode(t *testing.T) {
	assert.Equal(t, ThreadingSingleThread, ThreadingFromCode(0))
	assert.Equal(t, ThreadingSerialized, ThreadingFromCode(1))
	assert.Equal(t, ThreadingMultiThread, ThreadingFromCode(2))
	assert.Equal(t, ThreadingSingleThread, ThreadingFromCode(7))

	assert.False(t, ThreadingSingleThread.IsThreadSafe())
	assert.True(t, ThreadingSerialized.IsThreadSafe())
	assert.True(t, ThreadingMultiThread.IsThreadSafe())
}

func TestParseThreading(t *testing.T) {
	for _, mode := range ThreadingModes.Members() {
		parsed, err := ParseThreading(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	_, err := ParseThreading("SERIALIZED")
	assert.Error(t, err)
}

func TestFlagOf(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Flag
		wantOk bool
	}{
		{name: "prefixed", input: "SQLITE_ENABLE_JSON1", want: FlagEnableJson, wantOk: true},
		{name: "bare", input: "ENABLE_JSON1", want: FlagEnableJson, wantOk: true},
		{name: "omit", input: "OMIT_JSON", want: FlagOmitJson, wantOk: true},
		{name: "irregular name", input: "SOUNDEX", want: FlagEnableSoundex, wantOk: true},
		{name: "unknown", input: "INVALID_FLAG", wantOk: false},
		{name: "valued option", input: "THREADSAFE", wantOk: false},
		{name: "empty", input: "", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FlagOf(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	t.Run("OptionWithValue", func(t *testing.T) {
		flag, ok := FlagOfOption("ENABLE_FTS5=1")
		assert.True(t, ok)
		assert.Equal(t, FlagEnableFts5, flag)
	})

	t.Run("Names", func(t *testing.T) {
		assert.Equal(t, "SQLITE_OMIT_JSON", FlagOmitJson.Name())
		assert.Equal(t, "OMIT_JSON", FlagOmitJson.BaseName())
		for _, flag := range Flags.Members() {
			got, ok := FlagOf(flag.BaseName())
			assert.True(t, ok, flag.Name())
			assert.Equal(t, flag, got)
		}
	})
}

func TestFeatureRules(t *testing.T) {
	tests := []struct {
		name   string
		report probe.Report
		key    FeatureKey
		want   bool
	}{
		{name: "fts5 enabled", report: report(3045000, 1, "ENABLE_FTS5"), key: FeatureFts5, want: true},
		{name: "fts5 absent", report: report(3045000, 1), key: FeatureFts5, want: false},
		{name: "attach by default", report: report(3045000, 1), key: FeatureAttach, want: true},
		{name: "attach omitted", report: report(3045000, 1, "OMIT_ATTACH"), key: FeatureAttach, want: false},
		{name: "json old without flag", report: report(3037000, 1), key: FeatureJson, want: false},
		{name: "json old with flag", report: report(3037000, 1, "ENABLE_JSON1"), key: FeatureJson, want: true},
		{name: "json builtin", report: report(3038000, 1), key: FeatureJson, want: true},
		{name: "json omitted", report: report(3045000, 1, "OMIT_JSON"), key: FeatureJson, want: false},
		{name: "jsonb too old", report: report(3044000, 1), key: FeatureJsonb, want: false},
		{name: "jsonb available", report: report(3045000, 1), key: FeatureJsonb, want: true},
		{name: "jsonb without json", report: report(3045000, 1, "OMIT_JSON"), key: FeatureJsonb, want: false},
		{name: "prepare quiet too old", report: report(3047002, 1), key: FeaturePrepareQuiet, want: false},
		{name: "prepare quiet", report: report(3048000, 1), key: FeaturePrepareQuiet, want: true},
		{name: "soundex", report: report(3045000, 1, "SOUNDEX"), key: FeatureSoundex, want: true},
		{name: "load extension omitted", report: report(3045000, 1, "OMIT_LOAD_EXTENSION"), key: FeatureLoadExtension, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.IsSupported(FromReport(tt.report)))
		})
	}
}

func TestEveryKeyHasRule(t *testing.T) {
	for _, key := range FeatureKeys.Members() {
		_, ok := rules[key]
		assert.True(t, ok, key.String())
	}
	assert.Len(t, rules, FeatureKeys.Len())
}

func TestDetect(t *testing.T) {
	lib := Detect(FromReport(report(3045000, 2,
		"COMPILER=gcc-13.2.0",
		"ENABLE_FTS5",
		"ENABLE_STAT4",
		"OMIT_DEPRECATED",
		"THREADSAFE=2",
	)))

	assert.Equal(t, Release(3, 45), lib.Version)
	assert.Equal(t, ThreadingMultiThread, lib.Threading)
	assert.True(t, lib.IsSupported(FeatureFts5))
	assert.True(t, lib.IsSupported(FeatureStat4))
	assert.True(t, lib.IsSupported(FeatureJsonb))
	assert.False(t, lib.IsSupported(FeatureDeprecated))
	assert.False(t, lib.IsSupported(FeatureFts3))

	// Keys come back in declaration order.
	for i := 1; i < len(lib.Features); i++ {
		assert.Less(t, lib.Features[i-1].Value, lib.Features[i].Value)
	}

	data, err := json.Marshal(lib)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version":"3.45.0"`)
	assert.Contains(t, string(data), `"threading":"multi-thread"`)
	assert.Contains(t, string(data), `"fts5"`)
}

func TestFromReport(t *testing.T) {
	p := FromReport(report(3046000, 1, "ENABLE_JSON1", "OMIT_TRACE", "THREADSAFE=1"))

	assert.Equal(t, Release(3, 46), p.Version())
	assert.Equal(t, ThreadingSerialized, p.Threading())
	assert.True(t, p.IsSet(FlagEnableJson))
	assert.True(t, p.IsSet(FlagOmitTrace))
	assert.False(t, p.IsSet(FlagOmitJson))
}
