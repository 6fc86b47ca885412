package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest of plain with a per-password salt
// embedded in the digest. The plaintext is never stored anywhere.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the bcrypt digest. It returns
// false on any mismatch or malformed digest rather than an error, so callers
// on the login path have a single failure outcome.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
