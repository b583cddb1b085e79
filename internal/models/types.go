package models

// Command selects which Logs Engine operation to perform.
type Command string

const (
	// CommandRetrieve streams log records stored in R2 matching the query.
	CommandRetrieve Command = "retrieve"
	// CommandList enumerates the R2 objects containing matching logs.
	CommandList Command = "list"
)

// Diagnostic classifies the outcome of a fetch. Non-2xx responses and empty
// bodies are soft failures: the body is empty, the class says why.
type Diagnostic int

const (
	// DiagOK means a successful response with a non-empty body.
	DiagOK Diagnostic = iota
	// DiagEmpty means a successful response with no records in range.
	DiagEmpty
	// DiagHTTPError means the API rejected the request with a non-2xx status.
	DiagHTTPError
)

// FetchResult is the outcome of one Logs Engine request. Body is the raw
// NDJSON response text, empty unless Class is DiagOK.
type FetchResult struct {
	Body   string
	Class  Diagnostic
	Status int    // HTTP status code of the response
	Detail string // error body excerpt, set for DiagHTTPError
}

// IsEmpty reports whether the fetch produced no records to print.
func (r FetchResult) IsEmpty() bool {
	return r.Body == ""
}

// ObjectResult describes one object downloaded directly from the R2 bucket.
type ObjectResult struct {
	BucketName string
	Key        string
	Size       int64
	Body       []byte
}
