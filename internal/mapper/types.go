package mapper

// Span is a region of YAML source. Lines and columns are 1-based.
type Span struct {
	StartLine  int
	StartCol   int
	EndLine    int
	EndCol     int
	Confidence float64 // 0.0 - 1.0
	Reason     string  // why this span was chosen
}

// ErrorMeta describes one schema failure independently of the validator
type ErrorMeta struct {
	Kind     string // keyword that failed: "type", "required", "additionalProperties", ...
	Property string // offending or missing key, when the keyword names one
	Message  string
}

// Failure is a leaf schema failure and the JSON pointer of the value it
// concerns
type Failure struct {
	Pointer string
	Meta    ErrorMeta
}
