package config

import "time"

// Defaults mirror the behaviour of the service when nothing is configured.
const (
	DefaultHTTPAddress      = "0.0.0.0:8000"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultQueryTimeout     = 5 * time.Second
	DefaultMaxOpenConns     = 10
	DefaultMaxIdleConns     = 4
	DefaultKeysTTL          = time.Hour
	DefaultKeysFetchTimeout = 5 * time.Second
	DefaultLogLevel         = "debug"
	DefaultVersion          = "1.0.0"

	// DefaultKeysURL serves the x509 certificates that sign Firebase ID tokens.
	DefaultKeysURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

	// DefaultCredentialsPath is where the service-account file is looked up
	// when no path is configured.
	DefaultCredentialsPath = "firebase-credentials.json"
)

// DefaultCORSOrigins is used when no origins are configured.
var DefaultCORSOrigins = []string{"http://localhost:3000"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:     DefaultVersion,
			Environment: EnvironmentDevelopment,
			LogLevel:    DefaultLogLevel,
		},
		Auth: Auth{
			CredentialsPath:  DefaultCredentialsPath,
			KeysURL:          DefaultKeysURL,
			KeysTTL:          DefaultKeysTTL,
			KeysFetchTimeout: DefaultKeysFetchTimeout,
		},
		Storage: Storage{
			DB: DB{
				QueryTimeout: DefaultQueryTimeout,
				MaxOpenConns: DefaultMaxOpenConns,
				MaxIdleConns: DefaultMaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			CORSOrigins:    append([]string(nil), DefaultCORSOrigins...),
		},
	}
}
