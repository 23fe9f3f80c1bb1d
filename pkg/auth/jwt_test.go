package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "shopkeeper")
	assert.NoError(t, err)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "shopkeeper", claims.Username)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	claims, err := ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
