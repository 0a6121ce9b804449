package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEncryptor_RejectsWrongKeySize(t *testing.T) {
	_, err := NewEncryptor([]byte("too short"))
	assert.ErrorIs(t, err, ErrInvalidKeySize)
}

func TestEncryptor_RoundTrip(t *testing.T) {
	enc, err := NewEncryptor(bytes.Repeat([]byte{0x42}, KeySize))
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("session-token-value")
	require.NoError(t, err)
	assert.NotEqual(t, "session-token-value", ciphertext)

	plaintext, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "session-token-value", plaintext)
}

func TestEncryptor_EmptyStringRoundTrips(t *testing.T) {
	enc, err := NewEncryptor(bytes.Repeat([]byte{0x42}, KeySize))
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, ciphertext)

	plaintext, err := enc.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, plaintext)
}

func TestEncryptor_NoncesDiffer(t *testing.T) {
	enc, err := NewEncryptor(bytes.Repeat([]byte{0x42}, KeySize))
	require.NoError(t, err)

	first, err := enc.Encrypt("token")
	require.NoError(t, err)
	second, err := enc.Encrypt("token")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestEncryptor_WrongKeyFailsToDecrypt(t *testing.T) {
	enc, err := NewEncryptor(bytes.Repeat([]byte{0x42}, KeySize))
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("token")
	require.NoError(t, err)

	other, err := NewEncryptor(bytes.Repeat([]byte{0x43}, KeySize))
	require.NoError(t, err)

	_, err = other.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEncryptor_TruncatedCiphertext(t *testing.T) {
	enc, err := NewEncryptor(bytes.Repeat([]byte{0x42}, KeySize))
	require.NoError(t, err)

	_, err = enc.Decrypt("YWJj")
	assert.ErrorIs(t, err, ErrCiphertextTooShort)

	_, err = enc.Decrypt("not base64!!!")
	assert.Error(t, err)
}

func TestNewEncryptorFromSecret_Deterministic(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	require.Len(t, salt, SaltSize)

	first, err := NewEncryptorFromSecret("hunter2", salt)
	require.NoError(t, err)
	second, err := NewEncryptorFromSecret("hunter2", salt)
	require.NoError(t, err)

	ciphertext, err := first.Encrypt("token")
	require.NoError(t, err)

	plaintext, err := second.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "token", plaintext)
}

func TestNewEncryptorFromSecret_Validation(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	_, err = NewEncryptorFromSecret("", salt)
	assert.Error(t, err)

	_, err = NewEncryptorFromSecret("hunter2", []byte("short"))
	assert.Error(t, err)
}

func TestGenerateSecret(t *testing.T) {
	first, err := GenerateSecret()
	require.NoError(t, err)
	second, err := GenerateSecret()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
