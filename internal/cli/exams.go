package cli

import (
	"fmt"

	"github.com/prepsheet/prepsheet/internal/catalog"
)

type ExamsCmd struct{}

func (c *ExamsCmd) Run(ctx *Context) error {
	for _, exam := range catalog.Exams() {
		fmt.Printf("%s (%s)\n", exam.Name, exam.Key)
		for _, s := range exam.Subjects {
			fmt.Printf("  %-20s %s\n", s.Key, s.Label)
		}
		fmt.Println()
	}
	return nil
}
