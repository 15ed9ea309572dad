// Command ncmdump decrypts NetEase Cloud Music .ncm files and talks to the
// NetEase web API for search, download, and playlist access.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ec *exitCoder
		if errors.As(err, &ec) {
			os.Exit(ec.code)
		}
		os.Exit(1)
	}
}
