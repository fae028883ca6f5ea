package password_test

import (
	"busticket/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.NoError(t, password.Verify("correct horse", hash))
	assert.ErrorIs(t, password.Verify("wrong horse", hash), password.ErrInvalidPassword)
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("secret")
	require.NoError(t, err)

	second, err := password.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHash_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: password.ErrEmptyPassword},
		{name: "over 72 bytes", input: strings.Repeat("a", 73), wantErr: password.ErrPasswordTooLong},
		{name: "multibyte over 72 bytes", input: strings.Repeat("日", 25), wantErr: password.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, hash)
		})
	}
}

func TestHash_ExactlyMaxLength(t *testing.T) {
	hash, err := password.Hash(strings.Repeat("日", 24))

	require.NoError(t, err)
	assert.NoError(t, password.Verify(strings.Repeat("日", 24), hash))
}

func TestVerify_EmptyInput(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "$2a$10$hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("secret", ""), password.ErrInvalidPassword)
}
