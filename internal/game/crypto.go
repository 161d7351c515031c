package game

import (
	"github.com/lonng/liaptong/pkg/crypto"

	"github.com/lonng/nano/pipeline"
	"github.com/lonng/nano/session"
)

// cryptoPipe encrypts payloads on the wire when a key is configured.
type cryptoPipe struct {
	key []byte
}

func newCrypto(key string) *cryptoPipe {
	return &cryptoPipe{key: []byte(key)}
}

func (c *cryptoPipe) inbound(s *session.Session, msg *pipeline.Message) error {
	out, err := crypto.Decrypt(msg.Data, c.key)
	if err != nil {
		logger.Errorf("消息解密失败: UID=%d, Route=%s, Error=%v", uid(s), msg.Route, err)
		return err
	}
	msg.Data = out
	return nil
}

func (c *cryptoPipe) outbound(s *session.Session, msg *pipeline.Message) error {
	msg.Data = crypto.Encrypt(msg.Data, c.key)
	return nil
}

func uid(s *session.Session) int64 {
	if s == nil {
		return 0
	}
	return s.UID()
}
