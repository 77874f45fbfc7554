package main

import (
	"fmt"

	"github.com/trezcool/masomo-gpa/core"
)

// validateEmail prints the validation message; the returned error is one of the email.Err* sentinels.
func (cli *commandLine) validateEmail(addr string) error {
	res := cli.emailValidator.Validate(addr)
	if !res.IsValid {
		fmt.Fprintf(cli.out, "%q: %s\n", addr, res.Message)
		return res.Err()
	}
	fmt.Fprintf(cli.out, "%q: valid\n", addr)
	return nil
}

func (cli *commandLine) generateIDs(n int) error {
	for i := 0; i < n; i++ {
		fmt.Fprintln(cli.out, core.GenerateID())
	}
	return nil
}
