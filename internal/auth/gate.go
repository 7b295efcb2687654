package auth

import "golang.org/x/crypto/bcrypt"

// Default credential pair of the simulated admin account.
const (
	DefaultAdminUser = "orbital"
	DefaultAdminPass = "2025"
)

const bcryptCost = 12

// Gate checks the single administrative credential pair. This is a UI gate
// for the simulation, not a security boundary; the password is still only
// ever held as a bcrypt hash.
type Gate struct {
	username     string
	passwordHash []byte
}

// NewGate hashes the configured password once at startup.
func NewGate(username, password string) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	return &Gate{username: username, passwordHash: hash}, nil
}

// Authenticate reports whether the credentials match the admin pair.
func (g *Gate) Authenticate(username, password string) bool {
	if username != g.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)) == nil
}
