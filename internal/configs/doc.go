// Package configs manages Cryptr's user configuration.
//
// Configuration is stored in TOML format, by default at
// $XDG_CONFIG_HOME/cryptr/config.toml (the platform equivalent of
// os.UserConfigDir). A missing file means "use the defaults"; keys that are
// present override them.
//
//	[keys]
//	symmetric_bits = 128       # 128 | 192 | 256
//
//	[wrap]
//	padding = "pkcs1v15"       # pkcs1v15 | oaep
//
//	[files]
//	workers = 4                # batch worker pool size
//	encrypted_suffix = ".enc"  # appended by encryptfiles
//
//	[audit]
//	enabled = false
//	path = ""                  # defaults to <config dir>/cryptr/audit.jsonl
//
// Unknown keys and unsupported values are rejected with ErrInvalidConfig.
//
// # Active Configuration
//
// The root command loads the file named by --config (or the default path)
// into Active before any subcommand runs.
package configs
