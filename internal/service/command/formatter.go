package command

import (
	"fmt"
)

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Member(group, member string) string {
	return fmt.Sprintf("%s: %s", group, member)
}

func (f *ResponseFormatter) Members(group string, members []string) []string {
	lines := make([]string, 0, len(members))
	for _, m := range members {
		lines = append(lines, f.Member(group, m))
	}
	return lines
}

func (f *ResponseFormatter) UnknownGroup() string {
	return "I don't recognize that department!"
}

func (f *ResponseFormatter) InputError() string {
	return "Input error!"
}

func (f *ResponseFormatter) Farewell() string {
	return "Have a nice day!"
}
