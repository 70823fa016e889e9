// Command hashpass prints the ADMIN_PASSWORD_HASH value for a password.
//
//	hashpass 'my password'
//	echo 'my password' | hashpass
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lumina-reserve/backend/internal/auth"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: hashpass [password]")
		fmt.Fprintln(os.Stderr, "Reads the password from stdin when no argument is given.")
	}
	flag.Parse()

	password, err := readPassword(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashpass: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(auth.Digest(password))
}

func readPassword(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("no password given: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
