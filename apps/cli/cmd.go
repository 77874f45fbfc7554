package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/trezcool/masomo-gpa/core/email"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out            io.Writer
	emailValidator *email.Validator
	strictGrades   bool
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  grades                                         - list the grade scale")
	fmt.Fprintln(cli.out, "  gpa -course [NAME:]GRADE:CREDITS ... [-strict] - calculate a GPA")
	fmt.Fprintln(cli.out, "  validate-email -email EMAIL                    - check a university email")
	fmt.Fprintln(cli.out, "  genid [-n N]                                   - generate row IDs")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	gpaCmd := cli.newFlagSet("gpa")
	var courses courseList
	gpaCmd.Var(&courses, "course", "A course as [NAME:]GRADE:CREDITS. Repeat for every course.")
	gpaStrict := gpaCmd.Bool("strict", cli.strictGrades, "Reject unknown grades instead of counting them as 0.0 points.")

	validateEmailCmd := cli.newFlagSet("validate-email")
	validateEmailAddr := validateEmailCmd.String("email", "", "The email address to check.")

	genIDCmd := cli.newFlagSet("genid")
	genIDCount := genIDCmd.Int("n", 1, "How many IDs to generate.")

	switch args[1] {
	case "grades":
		return cli.listGrades()
	case "gpa":
		if err := gpaCmd.Parse(args[2:]); err != nil {
			return parseErr(err)
		}
		return cli.calculateGPA(courses, *gpaStrict)
	case "validate-email":
		if err := validateEmailCmd.Parse(args[2:]); err != nil {
			return parseErr(err)
		}
		return cli.validateEmail(*validateEmailAddr)
	case "genid":
		if err := genIDCmd.Parse(args[2:]); err != nil {
			return parseErr(err)
		}
		if *genIDCount < 1 {
			genIDCmd.Usage()
			return errHelp
		}
		return cli.generateIDs(*genIDCount)
	default:
		cli.printUsage()
		return errHelp
	}
}

func parseErr(err error) error {
	if err == flag.ErrHelp {
		return errHelp
	}
	return err
}

// courseList collects repeated -course flags.
type courseList []string

func (cl *courseList) String() string { return strings.Join(*cl, ", ") }

func (cl *courseList) Set(v string) error {
	*cl = append(*cl, v)
	return nil
}
