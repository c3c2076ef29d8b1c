package neuroglancer

import "errors"

// ErrorKind classifies a loader or extractor failure.
type ErrorKind int

const (
	// ResourceUnavailable means the state file could not be opened or read.
	ResourceUnavailable ErrorKind = iota + 1
	// MalformedDocument means the file content is not valid JSON.
	MalformedDocument
	// NoMatchingLayer means no layer had both the required type and name.
	NoMatchingLayer
	// InvalidSourceShape means an image layer source was neither a string nor an object.
	InvalidSourceShape
	// StructuralError means the document lacked an expected key or type.
	StructuralError
)

func (k ErrorKind) String() string {
	switch k {
	case ResourceUnavailable:
		return "resource_unavailable"
	case MalformedDocument:
		return "malformed_document"
	case NoMatchingLayer:
		return "no_matching_layer"
	case InvalidSourceShape:
		return "invalid_source_shape"
	case StructuralError:
		return "structural_error"
	default:
		return "unknown"
	}
}

const (
	msgOpenFailed       = "An error occurred while opening the given JSON file"
	msgParseFailed      = "An error occurred while parsing the given JSON file"
	msgNoAnnotations    = "No annotations found in the file."
	msgAnnotationFailed = "An error occurred while extracting the annotations"
	msgNoSource         = "No source URL found in the file."
	msgInvalidSource    = "Invalid source format in the file."
	msgSourceFailed     = "An error occurred while extracting the source URL"
	msgLayersFailed     = "An error occurred while listing the layers"
)

// Error is returned by every loader and extractor in this package.
// Its message is the diagnostic shown to the user, followed by the
// underlying cause when there is one.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// FieldError describes a missing key or a type mismatch at a document path,
// e.g. "layers[2].type: expected string, got number".
type FieldError struct {
	Path   string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Path + ": " + e.Reason
}
