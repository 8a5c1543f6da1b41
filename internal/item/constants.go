package item

// Error message formats for the loader
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgConfigNil            = "config is nil"
	ErrMsgNoItemsDefined       = "no items defined"

	ErrFmtDuplicateName      = "%w: %q"
	ErrFmtAttachEffectFailed = "item %q: attach %s effect %q: %w"
)
