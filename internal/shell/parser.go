package shell

import "strings"

// Invocation is one parsed input line.
type Invocation struct {
	Name string
	Args []string
}

// Parse splits line on whitespace. The first field names the command and
// the rest are its arguments. There is no quoting or escaping.
func Parse(line string) (Invocation, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}, ErrEmptyCommand
	}
	return Invocation{Name: fields[0], Args: fields[1:]}, nil
}
