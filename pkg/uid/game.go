package uid

import "github.com/google/uuid"

// GenerateMatchID returns a random match identifier
func GenerateMatchID() string {
	return uuid.NewString()
}

// IsMatchID reports whether id could have come from GenerateMatchID
func IsMatchID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
