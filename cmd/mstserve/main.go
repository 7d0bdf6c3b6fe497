// Command mstserve runs the HTTP façade of the MST engine.
//
// Usage:
//
//	mstserve [-l ADDR] [-q]
//
//	-l ADDR  listen address (default :8080)
//	-q       quiet mode (no request logging)
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/mstkit/service"
)

func main() {
	var (
		addr  = flag.String("l", ":8080", "listen address")
		quiet = flag.Bool("q", false, "quiet mode (no request logging)")
	)
	flag.Parse()

	s := service.New(service.Options{Addr: *addr, Quiet: *quiet})
	if err := s.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
