package ports

// ClearanceIssuer mints and validates short-lived passes handed out after
// a successful verification, so clients do not resubmit captcha tokens.
type ClearanceIssuer interface {
	Issue(tokenDigest string) (string, error)
	Check(pass string) error
}
