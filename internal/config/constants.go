package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./recipevault.db"

	// DefaultBcryptCost is the bcrypt work factor used when none is configured
	DefaultBcryptCost = 10
)
