package crypto

import "fmt"

// productKeyInput builds the deterministic material a product key is
// derived from. The secret never leaves the server; the key handed out
// is a one-way hash of this string.
func productKeyInput(email, role, secret string) string {
	return fmt.Sprintf("%s-%s-%s", email, role, secret)
}

// IssueProductKey derives a product key authorizing email to sign up
// with the given privileged role. The key is never persisted; it is
// verified at signup by recomputing the same input.
func IssueProductKey(email, role, secret string) (string, error) {
	return HashPassword(productKeyInput(email, role, secret))
}

// VerifyProductKey checks a candidate key against the (email, role)
// pair it claims to authorize. A false result must be treated as a hard
// authorization failure by callers.
func VerifyProductKey(email, role, secret, candidate string) (bool, error) {
	return VerifyPassword(productKeyInput(email, role, secret), candidate)
}
