package random

import (
	"net"
)

// UnusedPort asks the kernel for a free TCP port on localhost.
// The port is released before return, so it may be taken by the time it is used.
func UnusedPort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
