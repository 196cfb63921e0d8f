package domain

import "context"

// DataSourceMode selects between the in-memory mock list and the remote API.
type DataSourceMode string

const (
	ModeLocal DataSourceMode = "local"
	ModeAPI   DataSourceMode = "api"

	DefaultMode = ModeLocal

	ModeStorageKey = "job_data_source_mode"
)

// ParseMode maps anything other than "api" to local.
func ParseMode(s string) DataSourceMode {
	if DataSourceMode(s) == ModeAPI {
		return ModeAPI
	}
	return ModeLocal
}

func (m DataSourceMode) Valid() bool {
	return m == ModeLocal || m == ModeAPI
}

// ModeSource is read before every repository operation.
type ModeSource interface {
	Mode(ctx context.Context) DataSourceMode
}

// FixedMode is a ModeSource that never changes.
type FixedMode DataSourceMode

func (m FixedMode) Mode(context.Context) DataSourceMode {
	return DataSourceMode(m)
}
