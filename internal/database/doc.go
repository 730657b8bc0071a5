// Package database provides the data access layer for the application.
//
// database.go owns connection setup and migrations; domain operations
// live in sub-packages, each exposing a Repository over the shared
// *gorm.DB:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	└── users/           # Credential store: username + password-hash records
//
// The pool created by NewDatabase is shared for the process lifetime and
// is the single point of serialization between concurrent requests.
package database
