// Package whitelist guards the history endpoints by remote address.
package whitelist

import (
	"net"
	"regexp"
	"sort"
	"strings"
	"sync"
)

var (
	lock sync.RWMutex
	ips  = map[string]*regexp.Regexp{}
)

// 将 192.168.1.* 形式的规则编译为完整匹配的正则
func compile(pattern string) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(pattern)
	quoted = strings.Replace(quoted, `\*`, `[0-9]+`, -1)
	return regexp.Compile("^" + quoted + "$")
}

func Setup(list []string) error {
	lock.Lock()
	defer lock.Unlock()

	for _, ip := range list {
		re, err := compile(ip)
		if err != nil {
			return err
		}
		ips[ip] = re
	}

	return nil
}

// VerifyIP checks an address, with or without port, against the list.
// An empty list allows everyone.
func VerifyIP(addr string) bool {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	lock.RLock()
	defer lock.RUnlock()

	if len(ips) == 0 {
		return true
	}
	for _, r := range ips {
		if r.MatchString(addr) {
			return true
		}
	}
	return false
}

func RegisterIP(ip string) error {
	lock.Lock()
	defer lock.Unlock()

	if _, ok := ips[ip]; ok {
		return nil
	}

	re, err := compile(ip)
	if err != nil {
		return err
	}
	ips[ip] = re
	return nil
}

func RemoveIP(ip string) {
	lock.Lock()
	defer lock.Unlock()

	delete(ips, ip)
}

func IPList() []string {
	lock.RLock()
	defer lock.RUnlock()

	list := []string{}
	for ip := range ips {
		list = append(list, ip)
	}
	sort.Strings(list)
	return list
}

func ClearIPList() {
	lock.Lock()
	defer lock.Unlock()

	ips = map[string]*regexp.Regexp{}
}
