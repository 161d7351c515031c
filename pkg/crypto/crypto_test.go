package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = []byte("hKKJdfskj997sdSk")

func TestEncryptDecrypt(t *testing.T) {
	payload := []byte(`{"indices":[0,1],"value":3}`)

	encrypted := Encrypt(payload, key)
	assert.NotEqual(t, payload, encrypted)

	decrypted, err := Decrypt(encrypted, key)
	require.NoError(t, err)
	assert.Equal(t, payload, decrypted)
}

func TestDecrypt_Errors(t *testing.T) {
	_, err := Decrypt([]byte("not base64!"), key)
	assert.Error(t, err)

	_, err = Decrypt(Encrypt([]byte("payload"), key), []byte("another key 1234"))
	assert.Error(t, err)

	_, err = Decrypt([]byte("abcd"), nil)
	assert.Error(t, err)
}

func TestEmptyPayload(t *testing.T) {
	assert.Empty(t, Encrypt(nil, key))

	out, err := Decrypt(nil, key)
	require.NoError(t, err)
	assert.Empty(t, out)
}
