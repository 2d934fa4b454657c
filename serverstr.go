package pulse

import (
	"strings"
)

// A serverString is one entry of a PULSE_SERVER style server list: an
// optional {localname} guard restricting the entry to a specific host,
// a dial protocol, and an address.
type serverString struct {
	localname string
	protocol  string
	addr      string
}

// parseServerString splits a server list into its entries. Entries that
// cannot be parsed are skipped; connecting tries the remaining entries in
// order.
func parseServerString(str string) []serverString {
	var result []serverString
	for _, s := range strings.Fields(str) {
		var server serverString
		if s[0] == '{' {
			end := strings.IndexByte(s, '}')
			if end < 0 {
				continue
			}
			server.localname = s[1:end]
			s = s[end+1:]
		}
		switch {
		case len(s) == 0:
			continue
		case s[0] == '/':
			server.protocol = "unix"
			server.addr = s
		case strings.HasPrefix(s, "unix:"):
			server.protocol = "unix"
			server.addr = s[5:]
		case strings.HasPrefix(s, "tcp6:"):
			server.protocol = "tcp6"
			server.addr = s[5:]
		case strings.HasPrefix(s, "tcp4:"):
			server.protocol = "tcp4"
			server.addr = s[5:]
		case strings.HasPrefix(s, "tcp:"):
			server.protocol = "tcp"
			server.addr = s[4:]
		default:
			continue
		}
		result = append(result, server)
	}
	return result
}
