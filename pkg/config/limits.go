package config

// Limits are the tunable policy numbers for rendering and recipient
// validation. Defaults match production behaviour.
type Limits struct {
	// MaxCSVRows caps how many recipient rows are validated per file.
	MaxCSVRows int `env:"NOTIFY_MAX_CSV_ROWS" envDefault:"100000"`
	// EmailSizeLimit caps substituted email content in UTF-8 bytes,
	// guarding the provider's MIME limit after base64 and HTML expansion.
	EmailSizeLimit int `env:"NOTIFY_EMAIL_SIZE_LIMIT" envDefault:"2000000"`
	// SMSCharLimit caps a text message's character count, prefix excluded.
	SMSCharLimit int `env:"NOTIFY_SMS_CHAR_LIMIT" envDefault:"918"`
	// BroadcastGSMLimit and BroadcastUCS2Limit cap a broadcast page in its
	// respective encoding.
	BroadcastGSMLimit  int `env:"NOTIFY_BROADCAST_GSM_LIMIT" envDefault:"1395"`
	BroadcastUCS2Limit int `env:"NOTIFY_BROADCAST_UCS2_LIMIT" envDefault:"615"`
	// MaxErrorsShown and MaxInitialRowsShown bound the listings on the
	// upload preview page.
	MaxErrorsShown      int `env:"NOTIFY_MAX_ERRORS_SHOWN" envDefault:"20"`
	MaxInitialRowsShown int `env:"NOTIFY_MAX_INITIAL_ROWS_SHOWN" envDefault:"10"`
}
