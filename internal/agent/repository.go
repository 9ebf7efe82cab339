package agent

type Repository interface {
	// Validate reports whether the code/password pair exists in the
	// credentials file. Any read failure reads as "no such agent".
	Validate(code, password string) bool
}
