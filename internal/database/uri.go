package database

import "github.com/spatialid/adjuststatus/internal/msgfmt"

// Credentials describe one database: a connection URI and the login kept
// outside of it.
type Credentials struct {
	URI      string
	User     string
	Password string
}

// BuildConnectionURI substitutes host, port and dbName into template at
// positions {0}, {1} and {2}. Values are not validated.
func BuildConnectionURI(template, host, port, dbName string) string {
	return msgfmt.Format(template, host, port, dbName)
}
