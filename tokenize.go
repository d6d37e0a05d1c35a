package ftpcmd

import "strings"

// whitespace separates the verb from its argument.
const whitespace = " \t\r"

// splitVerb splits a control line at the first whitespace only.
// Everything after that separator is the argument, taken verbatim so that
// paths like "my file.txt" survive intact. An argument made of nothing but
// whitespace is reported as absent.
func splitVerb(line string) (verb, arg string, hasArg bool, err error) {
	line = strings.TrimLeft(line, whitespace)
	if line == "" {
		return "", "", false, ErrEmptyInput
	}

	i := strings.IndexAny(line, whitespace)
	if i < 0 {
		return line, "", false, nil
	}

	verb, arg = line[:i], line[i+1:]
	if strings.TrimLeft(arg, whitespace) == "" {
		return verb, "", false, nil
	}
	return verb, arg, true, nil
}
