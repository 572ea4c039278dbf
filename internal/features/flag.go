package features

import (
	"strings"

	"github.com/orsinium-labs/enum"
)

// FlagPrefix is the prefix every compile-time flag carries in C source.
// sqlite3_compileoption_get reports names without it.
const FlagPrefix = "SQLITE_"

// Flag is a compile-time option which enables or omits a SQLite feature.
//
// https://www.sqlite.org/compile.html
type Flag enum.Member[string]

var (
	FlagEnableApiArmor          = Flag{Value: "SQLITE_ENABLE_API_ARMOR"}
	FlagEnableCaseSensitiveLike = Flag{Value: "SQLITE_CASE_SENSITIVE_LIKE"}
	FlagEnableColumnMetadata    = Flag{Value: "SQLITE_ENABLE_COLUMN_METADATA"}
	FlagEnableFts3              = Flag{Value: "SQLITE_ENABLE_FTS3"}
	FlagEnableFts5              = Flag{Value: "SQLITE_ENABLE_FTS5"}
	FlagEnableJson              = Flag{Value: "SQLITE_ENABLE_JSON1"}
	FlagEnableMemoryManagement  = Flag{Value: "SQLITE_ENABLE_MEMORY_MANAGEMENT"}
	FlagEnableNormalizeSql      = Flag{Value: "SQLITE_ENABLE_NORMALIZE"}
	FlagEnablePreUpdateHook     = Flag{Value: "SQLITE_ENABLE_PREUPDATE_HOOK"}
	FlagEnableProgressCallback  = Flag{Value: "SQLITE_ENABLE_PROGRESS_CALLBACK"}
	FlagEnableSession           = Flag{Value: "SQLITE_ENABLE_SESSION"}
	FlagEnableSnapshot          = Flag{Value: "SQLITE_ENABLE_SNAPSHOT"}
	FlagEnableSoundex           = Flag{Value: "SQLITE_SOUNDEX"}
	FlagEnableStat4             = Flag{Value: "SQLITE_ENABLE_STAT4"}
	FlagOmitAttach              = Flag{Value: "SQLITE_OMIT_ATTACH"}
	FlagOmitAuthorization       = Flag{Value: "SQLITE_OMIT_AUTHORIZATION"}
	FlagOmitAutomaticInitialize = Flag{Value: "SQLITE_OMIT_AUTOINIT"}
	FlagOmitAutomaticReset      = Flag{Value: "SQLITE_OMIT_AUTORESET"}
	FlagOmitBlobIo              = Flag{Value: "SQLITE_OMIT_BLOB_LITERAL"}
	FlagOmitBlobLike            = Flag{Value: "SQLITE_OMIT_LIKE_OPTIMIZATION"}
	FlagOmitColumnDeclaredType  = Flag{Value: "SQLITE_OMIT_DECLTYPE"}
	FlagOmitComplete            = Flag{Value: "SQLITE_OMIT_COMPLETE"}
	FlagOmitDeprecated          = Flag{Value: "SQLITE_OMIT_DEPRECATED"}
	FlagOmitGetTable            = Flag{Value: "SQLITE_OMIT_GET_TABLE"}
	FlagOmitJson                = Flag{Value: "SQLITE_OMIT_JSON"}
	FlagOmitLoadExtension       = Flag{Value: "SQLITE_OMIT_LOAD_EXTENSION"}
	FlagOmitMemoryDatabases     = Flag{Value: "SQLITE_OMIT_MEMORYDB"}
	FlagOmitSerialize           = Flag{Value: "SQLITE_OMIT_DESERIALIZE"}
	FlagOmitSharedCache         = Flag{Value: "SQLITE_OMIT_SHARED_CACHE"}
	FlagOmitTclVariables        = Flag{Value: "SQLITE_OMIT_TCL_VARIABLE"}
	FlagOmitTemporaryDatabase   = Flag{Value: "SQLITE_OMIT_TEMPDB"}
	FlagOmitTrace               = Flag{Value: "SQLITE_OMIT_TRACE"}
	FlagOmitUtf16               = Flag{Value: "SQLITE_OMIT_UTF16"}

	Flags = enum.New(
		FlagEnableApiArmor,
		FlagEnableCaseSensitiveLike,
		FlagEnableColumnMetadata,
		FlagEnableFts3,
		FlagEnableFts5,
		FlagEnableJson,
		FlagEnableMemoryManagement,
		FlagEnableNormalizeSql,
		FlagEnablePreUpdateHook,
		FlagEnableProgressCallback,
		FlagEnableSession,
		FlagEnableSnapshot,
		FlagEnableSoundex,
		FlagEnableStat4,
		FlagOmitAttach,
		FlagOmitAuthorization,
		FlagOmitAutomaticInitialize,
		FlagOmitAutomaticReset,
		FlagOmitBlobIo,
		FlagOmitBlobLike,
		FlagOmitColumnDeclaredType,
		FlagOmitComplete,
		FlagOmitDeprecated,
		FlagOmitGetTable,
		FlagOmitJson,
		FlagOmitLoadExtension,
		FlagOmitMemoryDatabases,
		FlagOmitSerialize,
		FlagOmitSharedCache,
		FlagOmitTclVariables,
		FlagOmitTemporaryDatabase,
		FlagOmitTrace,
		FlagOmitUtf16,
	)
)

// FlagOf looks up a flag by name, with or without the SQLITE_ prefix.
// It returns false for flags no feature rule depends on.
//
// Example:
//
//	"SQLITE_ENABLE_JSON1" -> FlagEnableJson
//	"ENABLE_JSON1"        -> FlagEnableJson
func FlagOf(name string) (Flag, bool) {
	flag := Flags.Parse(FlagPrefix + strings.TrimPrefix(name, FlagPrefix))
	if flag == nil {
		return Flag{}, false
	}
	return *flag, true
}

// FlagOfOption looks up the flag of a compile option as reported by
// sqlite3_compileoption_get, ignoring any "=value" suffix.
//
// Example:
//
//	"THREADSAFE=1" -> not a feature flag
//	"OMIT_JSON"    -> FlagOmitJson
func FlagOfOption(option string) (Flag, bool) {
	name, _, _ := strings.Cut(strings.TrimSpace(option), "=")
	return FlagOf(name)
}

// Name returns the flag name including the SQLITE_ prefix.
func (f Flag) Name() string {
	return f.Value
}

// BaseName returns the flag name without the SQLITE_ prefix.
func (f Flag) BaseName() string {
	return strings.TrimPrefix(f.Value, FlagPrefix)
}

func (f Flag) String() string {
	return f.Value
}
