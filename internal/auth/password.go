package auth

import "golang.org/x/crypto/bcrypt"

// MaxPasswordBytes is the longest secret bcrypt accepts.
const MaxPasswordBytes = 72

const DefaultCost = 12

// Hasher is the credential hasher: salted bcrypt digests with a tunable cost.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a digest with a fresh random salt embedded in it.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	return string(b), err
}

// Verify reports whether plain matches digest. Malformed digests simply don't match.
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
