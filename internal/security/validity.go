package security

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxNameLen = 16

// ValidateName 玩家昵称: 1到16个字符, 不能包含控制字符, 首尾不能是空白
func ValidateName(name string) bool {
	if name == "" || name != strings.TrimSpace(name) {
		return false
	}
	if !utf8.ValidString(name) || utf8.RuneCountInString(name) > maxNameLen {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
