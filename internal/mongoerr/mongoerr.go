// Package mongoerr specifically handles MongoDB driver errors.
//
// It classifies driver errors (missing documents, server error codes,
// malformed object ids) and converts them into the client-facing
// errors defined in package errs.
package mongoerr

import "fmt"

// Code is the category a driver error was classified into.
type Code int

const (
	// Other is any error this package does not recognise. It maps to 500.
	Other Code = iota
	// NoDocuments is returned by single-document reads that matched nothing.
	NoDocuments
	// InvalidObjectID means a string could not be parsed as an ObjectID.
	InvalidObjectID
	// DuplicateKey is a unique index violation (server codes 11000, 11001, 12582).
	DuplicateKey
	// ImmutableField is an attempt to modify _id (server code 66).
	ImmutableField
	// FailedToParse is a malformed update document (server code 9).
	FailedToParse
	// Timeout covers context deadlines and server side time limits.
	Timeout
	// Network means the server could not be reached.
	Network
)

// Server error codes this package reacts to.
// https://www.mongodb.com/docs/manual/reference/error-codes/
const (
	serverCodeFailedToParse  = 9
	serverCodeImmutableField = 66
)

var codeNames = map[Code]string{
	Other:           "other",
	NoDocuments:     "no_documents",
	InvalidObjectID: "invalid_object_id",
	DuplicateKey:    "duplicate_key",
	ImmutableField:  "immutable_field",
	FailedToParse:   "failed_to_parse",
	Timeout:         "timeout",
	Network:         "network",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Error is a classified driver error. It keeps the original for Unwrap.
type Error struct {
	Code Code

	// ServerCode is the numeric code reported by the server, 0 when the
	// error did not come from the server.
	ServerCode int
	Message    string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("mongo %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
