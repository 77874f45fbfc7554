package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-gpa/core/gpa"
)

// parseCourse parses [NAME:]GRADE:CREDITS. NAME may itself contain colons.
func parseCourse(s string) (gpa.CourseEntry, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return gpa.CourseEntry{}, errors.Errorf("invalid course %q: want [NAME:]GRADE:CREDITS", s)
	}
	n := len(parts)
	return gpa.CourseEntry{
		Name:    strings.TrimSpace(strings.Join(parts[:n-2], ":")),
		Grade:   strings.TrimSpace(parts[n-2]),
		Credits: gpa.NewCredits(parts[n-1]),
	}, nil
}

func (cli *commandLine) listGrades() error {
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GRADE\tPOINTS")
	for _, gp := range gpa.Grades() {
		fmt.Fprintf(w, "%s\t%.1f\n", gp.Grade, gp.Points)
	}
	return w.Flush()
}

// calculateGPA prints the GPA of the given courses.
func (cli *commandLine) calculateGPA(courses []string, strict bool) error {
	entries := make([]gpa.CourseEntry, 0, len(courses))
	for i, c := range courses {
		entry, err := parseCourse(c)
		if err != nil {
			return err
		}
		entry.ID = strconv.Itoa(i + 1)
		entries = append(entries, entry)
	}

	var opts []gpa.Option
	if strict {
		opts = append(opts, gpa.WithStrictGrades())
	}
	res, err := gpa.Calculate(entries, opts...)
	if err != nil {
		return errors.Wrap(err, "calculating GPA")
	}
	fmt.Fprintf(cli.out, "GPA: %s (%s credits)\n", res.GPA, strconv.FormatFloat(res.TotalCredits, 'f', -1, 64))
	return nil
}
