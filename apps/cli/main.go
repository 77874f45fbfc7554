package main

import (
	"log"
	"os"

	"github.com/trezcool/masomo-gpa/core"
	"github.com/trezcool/masomo-gpa/core/email"
)

func main() {
	logger := log.New(os.Stderr, "CLI : ", log.LstdFlags|log.Lshortfile)

	conf := core.NewConfig()

	cli := commandLine{
		out:            os.Stdout,
		emailValidator: email.NewValidator(conf.Institution.EmailDomain),
		strictGrades:   conf.GPA.StrictGrades,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("error: %s\n", err)
		}
		os.Exit(1)
	}
}
