package service

import "golang.org/x/crypto/bcrypt"

// bcryptCost is deliberately expensive to slow down offline guessing.
const bcryptCost = 12

// PasswordHasher owns the one-way transformation of passwords. Cleartext
// passwords never leave this type in any other form than the hash.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcryptCost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether password matches the stored hash. bcrypt
// performs the comparison in constant time over the derived key.
func (h *PasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
