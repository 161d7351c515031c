package crypto

import (
	"encoding/base64"

	"github.com/lonng/liaptong/pkg/errutil"
	"github.com/pkg/errors"
	"github.com/xxtea/xxtea-go/xxtea"
)

var ErrDecrypt = errors.New("decrypt failed")

// Encrypt 使用xxtea加密后再做base64编码, 客户端按文本帧传输
func Encrypt(data, key []byte) []byte {
	if len(data) == 0 {
		return data
	}
	encrypted := xxtea.Encrypt(data, key)
	out := make([]byte, base64.StdEncoding.EncodedLen(len(encrypted)))
	base64.StdEncoding.Encode(out, encrypted)
	return out
}

// Decrypt reverses Encrypt.
func Decrypt(data, key []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	if len(key) == 0 {
		return nil, errutil.ErrInvalidParameter
	}

	raw := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(raw, data)
	if err != nil {
		return nil, errors.Wrap(ErrDecrypt, err.Error())
	}

	decrypted := xxtea.Decrypt(raw[:n], key)
	if decrypted == nil {
		return nil, ErrDecrypt
	}
	return decrypted, nil
}
