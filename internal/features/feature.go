// Package features derives which SQLite features a library supports from
// its version and compile-time options.
package features

import (
	"fmt"

	"github.com/orsinium-labs/enum"
)

// Prober answers the questions feature rules ask about a library.
type Prober interface {
	Version() Version
	Threading() Threading
	IsSet(flag Flag) bool
}

// FeatureKey identifies a detectable SQLite feature. Values are snake_case.
type FeatureKey enum.Member[string]

var (
	FeatureApiArmor              = FeatureKey{Value: "api_armor"}
	FeatureAttach                = FeatureKey{Value: "attach"}
	FeatureAuthorizationCallback = FeatureKey{Value: "authorization_callback"}
	FeatureAutomaticInitialize   = FeatureKey{Value: "automatic_initialize"}
	FeatureAutomaticReset        = FeatureKey{Value: "automatic_reset"}
	FeatureBlobIo                = FeatureKey{Value: "blob_io"}
	FeatureBlobLike              = FeatureKey{Value: "blob_like"}
	FeatureCaseSensitiveLike     = FeatureKey{Value: "case_sensitive_like"}
	FeatureColumnDeclaredType    = FeatureKey{Value: "column_declared_type"}
	FeatureColumnMetadata        = FeatureKey{Value: "column_metadata"}
	FeatureComplete              = FeatureKey{Value: "complete"}
	FeatureDeprecated            = FeatureKey{Value: "deprecated"}
	FeatureErrorOffset           = FeatureKey{Value: "error_offset"}
	FeatureFts3                  = FeatureKey{Value: "fts3"}
	FeatureFts5                  = FeatureKey{Value: "fts5"}
	FeatureGetTable              = FeatureKey{Value: "get_table"}
	FeatureJson                  = FeatureKey{Value: "json"}
	FeatureJsonb                 = FeatureKey{Value: "jsonb"}
	FeatureLoadExtension         = FeatureKey{Value: "load_extension"}
	FeatureMemoryDatabases       = FeatureKey{Value: "memory_databases"}
	FeatureMemoryManagement      = FeatureKey{Value: "memory_management"}
	FeatureNormalizeSql          = FeatureKey{Value: "normalize_sql"}
	FeaturePreUpdateHook         = FeatureKey{Value: "pre_update_hook"}
	FeaturePrepareQuiet          = FeatureKey{Value: "prepare_quiet"}
	FeatureProgressCallback      = FeatureKey{Value: "progress_callback"}
	FeatureSerialize             = FeatureKey{Value: "serialize"}
	FeatureSession               = FeatureKey{Value: "session"}
	FeatureSharedCache           = FeatureKey{Value: "shared_cache"}
	FeatureSnapshot              = FeatureKey{Value: "snapshot"}
	FeatureSoundex               = FeatureKey{Value: "soundex"}
	FeatureStat4                 = FeatureKey{Value: "stat4"}
	FeatureTclVariables          = FeatureKey{Value: "tcl_variables"}
	FeatureTemporaryDatabase     = FeatureKey{Value: "temporary_database"}
	FeatureTrace                 = FeatureKey{Value: "trace"}
	FeatureUtf16                 = FeatureKey{Value: "utf16"}

	FeatureKeys = enum.New(
		FeatureApiArmor,
		FeatureAttach,
		FeatureAuthorizationCallback,
		FeatureAutomaticInitialize,
		FeatureAutomaticReset,
		FeatureBlobIo,
		FeatureBlobLike,
		FeatureCaseSensitiveLike,
		FeatureColumnDeclaredType,
		FeatureColumnMetadata,
		FeatureComplete,
		FeatureDeprecated,
		FeatureErrorOffset,
		FeatureFts3,
		FeatureFts5,
		FeatureGetTable,
		FeatureJson,
		FeatureJsonb,
		FeatureLoadExtension,
		FeatureMemoryDatabases,
		FeatureMemoryManagement,
		FeatureNormalizeSql,
		FeaturePreUpdateHook,
		FeaturePrepareQuiet,
		FeatureProgressCallback,
		FeatureSerialize,
		FeatureSession,
		FeatureSharedCache,
		FeatureSnapshot,
		FeatureSoundex,
		FeatureStat4,
		FeatureTclVariables,
		FeatureTemporaryDatabase,
		FeatureTrace,
		FeatureUtf16,
	)
)

var (
	// JsonEnabledByDefault is the release from which JSON functions are
	// built in unless SQLITE_OMIT_JSON is set.
	JsonEnabledByDefault = Release(3, 38)
	// JsonbAvailable is the first release with JSONB functions.
	JsonbAvailable = Release(3, 45)
	// PrepareQuietAvailable is the first release with SQLITE_PREPARE_DONT_LOG.
	PrepareQuietAvailable = Release(3, 48)
)

type rule func(p Prober) bool

func enabled(flag Flag) rule {
	return func(p Prober) bool { return p.IsSet(flag) }
}

func notOmitted(flag Flag) rule {
	return func(p Prober) bool { return !p.IsSet(flag) }
}

func since(v Version) rule {
	return func(p Prober) bool { return !p.Version().Less(v) }
}

func supportsJson(p Prober) bool {
	if p.Version().Less(JsonEnabledByDefault) {
		return p.IsSet(FlagEnableJson)
	}
	return !p.IsSet(FlagOmitJson)
}

func supportsJsonb(p Prober) bool {
	return supportsJson(p) && since(JsonbAvailable)(p)
}

var rules = map[FeatureKey]rule{
	FeatureApiArmor:              enabled(FlagEnableApiArmor),
	FeatureAttach:                notOmitted(FlagOmitAttach),
	FeatureAuthorizationCallback: notOmitted(FlagOmitAuthorization),
	FeatureAutomaticInitialize:   notOmitted(FlagOmitAutomaticInitialize),
	FeatureAutomaticReset:        notOmitted(FlagOmitAutomaticReset),
	FeatureBlobIo:                notOmitted(FlagOmitBlobIo),
	FeatureBlobLike:              notOmitted(FlagOmitBlobLike),
	FeatureCaseSensitiveLike:     enabled(FlagEnableCaseSensitiveLike),
	FeatureColumnDeclaredType:    notOmitted(FlagOmitColumnDeclaredType),
	FeatureColumnMetadata:        enabled(FlagEnableColumnMetadata),
	FeatureComplete:              notOmitted(FlagOmitComplete),
	FeatureDeprecated:            notOmitted(FlagOmitDeprecated),
	FeatureErrorOffset:           since(Release(3, 38)),
	FeatureFts3:                  enabled(FlagEnableFts3),
	FeatureFts5:                  enabled(FlagEnableFts5),
	FeatureGetTable:              notOmitted(FlagOmitGetTable),
	FeatureJson:                  supportsJson,
	FeatureJsonb:                 supportsJsonb,
	FeatureLoadExtension:         notOmitted(FlagOmitLoadExtension),
	FeatureMemoryDatabases:       notOmitted(FlagOmitMemoryDatabases),
	FeatureMemoryManagement:      enabled(FlagEnableMemoryManagement),
	FeatureNormalizeSql:          enabled(FlagEnableNormalizeSql),
	FeaturePreUpdateHook:         enabled(FlagEnablePreUpdateHook),
	FeaturePrepareQuiet:          since(PrepareQuietAvailable),
	FeatureProgressCallback:      enabled(FlagEnableProgressCallback),
	FeatureSerialize:             notOmitted(FlagOmitSerialize),
	FeatureSession:               enabled(FlagEnableSession),
	FeatureSharedCache:           notOmitted(FlagOmitSharedCache),
	FeatureSnapshot:              enabled(FlagEnableSnapshot),
	FeatureSoundex:               enabled(FlagEnableSoundex),
	FeatureStat4:                 enabled(FlagEnableStat4),
	FeatureTclVariables:          notOmitted(FlagOmitTclVariables),
	FeatureTemporaryDatabase:     notOmitted(FlagOmitTemporaryDatabase),
	FeatureTrace:                 notOmitted(FlagOmitTrace),
	FeatureUtf16:                 notOmitted(FlagOmitUtf16),
}

// ParseFeatureKey parses a snake_case feature key.
func ParseFeatureKey(name string) (FeatureKey, error) {
	key := FeatureKeys.Parse(name)
	if key == nil {
		return FeatureKey{}, fmt.Errorf("unknown feature key: %q", name)
	}
	return *key, nil
}

// IsSupported checks this feature against p.
func (k FeatureKey) IsSupported(p Prober) bool {
	r, ok := rules[k]
	return ok && r(p)
}

func (k FeatureKey) String() string {
	return k.Value
}

func (k FeatureKey) MarshalText() ([]byte, error) {
	return []byte(k.Value), nil
}

func (k *FeatureKey) UnmarshalText(text []byte) error {
	parsed, err := ParseFeatureKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Supported returns every feature key p supports, in FeatureKeys order.
func Supported(p Prober) []FeatureKey {
	supported := []FeatureKey{}
	for _, key := range FeatureKeys.Members() {
		if key.IsSupported(p) {
			supported = append(supported, key)
		}
	}
	return supported
}
