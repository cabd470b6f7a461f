// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands built with cobra bind the same flags onto their own flag set and
call Resolve once parsing is done:

	cliparse.BindFlags(cmd.PersistentFlags(), &cfg)
	cfg, err = cliparse.Resolve(cfg)

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: Connection string, or SQLite file path (default: db.sqlite3)
  - DatabaseType: sqlite (default), postgres or pgx
  - LogLevel: debug, info (default), warn or error
  - LogFormat: text (default) or json
  - EnvFile: dotenv file loaded before reading the environment (default: .env)

# CLI Flags

	-p, --port          Server port
	-d, --database-url  Database URL
	-t, --database-type Database type
	--log-level         Log level
	--log-format        Log format
	--env-file          Dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_LEVEL     → --log-level
	LOG_FORMAT    → --log-format

CLI flags take precedence over environment variables. Variables from the
env file fill in only what the real environment leaves unset.

# Validation

Resolve returns an error for a malformed PORT, an unknown log level or
format, and a missing DATABASE_URL when the type is not sqlite.
*/
package cliparse
