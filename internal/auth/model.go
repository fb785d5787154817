package auth

// Operator is a named holder of an operator API key.
type Operator struct {
	Name    string
	KeyHash string
}

// Identity is stored in the request context after authentication.
type Identity struct {
	Operator string
}
