// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

import _ "embed"

const (
	// Vidinfo is the canonical application identifier used for filesystem paths and CLI branding.
	Vidinfo = "vidinfo"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the HTTP User-Agent sent with catalog requests.
	UserAgent = Vidinfo + "/" + Version
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Logo is the banner printed above the root command help.
//
//go:embed ascii.txt
var Logo string
