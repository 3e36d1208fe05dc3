package address

import "strconv"

// Join formats host and port into an authority. Port is omitted when it's unknown (0)
// or equal to the default one, so default ports never appear explicitly.
func Join(host string, port, defaultPort uint16) string {
	if port == 0 || port == defaultPort {
		return host
	}

	buff := make([]byte, 0, len(host)+len(":65535"))
	buff = append(buff, host...)
	buff = append(buff, ':')
	buff = strconv.AppendUint(buff, uint64(port), 10)

	return string(buff)
}
