// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"lumen/repl"
)

func main() {
	name := "there"
	if currentUser, err := user.Current(); err == nil {
		name = currentUser.Username
	}

	fmt.Printf("Welcome to the Lumen REPL, %s!\n", name)
	fmt.Println("Each line is parsed as a program. Prefix a line with :tokens to see its tokens.")

	if err := repl.Start(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
