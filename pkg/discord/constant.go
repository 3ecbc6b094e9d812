package discord

import "time"

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	ColorBlue   = 3447003
	ColorGreen  = 3066993
	ColorYellow = 16776960
	ColorRed    = 15158332

	ColorInfo    = ColorBlue
	ColorSuccess = ColorGreen
	ColorWarning = ColorYellow
	ColorError   = ColorRed

	MaxEmbedLength    = 6000
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 500 * time.Millisecond
)

const (
	DefaultUsername = "SafeSpace Bot"
	UserAgent       = "SafeSpace-Bot/1.0"
	ReportBugTitle  = "SafeSpace Service Error Report"
)
