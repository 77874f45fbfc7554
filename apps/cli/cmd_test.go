package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/masomo-gpa/core/email"
	"github.com/trezcool/masomo-gpa/core/gpa"
)

func setup() (*commandLine, *bytes.Buffer) {
	var out bytes.Buffer
	return &commandLine{
		out:            &out,
		emailValidator: email.NewValidator(email.DefaultDomain),
	}, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    string
}

func runCLITests(t *testing.T, tests []cliTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup()
			err := cli.run(append([]string{"masomo"}, tt.args...))
			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr), "run() error = %v, wantErr %v", err, tt.wantErr)
			case tt.wantErrStr != "":
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tt.wantErrStr)
				}
			default:
				assert.NoError(t, err)
			}
			if tt.wantOut != "" {
				assert.Contains(t, out.String(), tt.wantOut)
			}
		})
	}
}

func Test_commandLine_run(t *testing.T) {
	runCLITests(t, []cliTest{
		{name: "no command", args: nil, wantErr: errHelp, wantOut: "Usage:"},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp, wantOut: "Usage:"},
		{name: "help flag", args: []string{"genid", "-h"}, wantErr: errHelp},
		{name: "unknown flag", args: []string{"genid", "-x"}, wantErrStr: "flag provided but not defined: -x"},
	})
}

func Test_commandLine_grades(t *testing.T) {
	cli, out := setup()
	assert.NoError(t, cli.run([]string{"masomo", "grades"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 12) // header + 11 grades
	assert.Equal(t, "GRADE  POINTS", strings.TrimSpace(lines[0]))
	assert.Equal(t, "A-     3.7", strings.TrimSpace(lines[2]))
}

func Test_commandLine_gpa(t *testing.T) {
	runCLITests(t, []cliTest{
		{name: "no courses", args: []string{"gpa"}, wantErr: gpa.ErrEmptyInput},
		{name: "bad course", args: []string{"gpa", "-course", "A"}, wantErrStr: `invalid course "A"`},
		{
			name:    "invalid credits",
			args:    []string{"gpa", "-course", "Web:A:3", "-course", "Math:B:abc"},
			wantErr: gpa.ErrInvalidCredits,
		},
		{name: "zero credits", args: []string{"gpa", "-course", "A:0"}, wantErr: gpa.ErrZeroCredits},
		{
			name:    "two courses",
			args:    []string{"gpa", "-course", "Web:B:3", "-course", "A:3"},
			wantOut: "GPA: 3.50 (6 credits)",
		},
		{name: "name with colons", args: []string{"gpa", "-course", "CS:101:A:4"}, wantOut: "GPA: 4.00 (4 credits)"},
		{name: "unknown grade", args: []string{"gpa", "-course", "Z:2", "-course", "A:2"}, wantOut: "GPA: 2.00"},
		{
			name:    "unknown grade strict",
			args:    []string{"gpa", "-strict", "-course", "Z:2", "-course", "A:2"},
			wantErr: gpa.ErrUnknownGrade,
		},
	})
}

func Test_commandLine_validateEmail(t *testing.T) {
	runCLITests(t, []cliTest{
		{name: "missing", args: []string{"validate-email"}, wantErr: email.ErrMissingEmail, wantOut: "Email is required"},
		{name: "malformed", args: []string{"validate-email", "-email", "foo@bar"}, wantErr: email.ErrMalformedEmail},
		{
			name:    "wrong domain",
			args:    []string{"validate-email", "-email", "foo@gmail.com"},
			wantErr: email.ErrWrongDomain,
			wantOut: "Please use your official university email (@mnsuam.edu.pk)",
		},
		{name: "valid", args: []string{"validate-email", "-email", "STUDENT@MNSUAM.EDU.PK"}, wantOut: "valid"},
	})
}

func Test_commandLine_genid(t *testing.T) {
	runCLITests(t, []cliTest{
		{name: "zero", args: []string{"genid", "-n", "0"}, wantErr: errHelp},
	})

	cli, out := setup()
	assert.NoError(t, cli.run([]string{"masomo", "genid", "-n", "20"}))
	ids := strings.Fields(out.String())
	assert.Len(t, ids, 20)
	seen := make(map[string]bool)
	for _, id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func Test_parseCourse(t *testing.T) {
	entry, err := parseCourse(" Web Dev : B+ : 3 ")
	assert.NoError(t, err)
	assert.Equal(t, "Web Dev", entry.Name)
	assert.Equal(t, "B+", entry.Grade)
	f, ok := entry.Credits.Float()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	entry, err = parseCourse("F:")
	assert.NoError(t, err)
	assert.True(t, entry.Credits.IsEmpty())
}
