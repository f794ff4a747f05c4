package shell

import "strings"

const dateLayout = "02-Jan-2006"

func (b *builtins) showDate(args []string) (Result, error) {
	if len(args) > 0 {
		return fail(newError(UsageError, nil,
			"Date command doesn't accept any flags. Use 'time' command with -hours, -mins, -secs for time components"))
	}
	return ok(strings.ToLower(b.sys.Now().Format(dateLayout)))
}

// timeFields lists the flags time understands, in output order.
var timeFields = []struct {
	flag   string
	label  string
	layout string
}{
	{flag: "-hours", label: "HH:", layout: "15"},
	{flag: "-mins", label: "MM:", layout: "04"},
	{flag: "-secs", label: "SS", layout: "05"},
}

func (b *builtins) showTime(args []string) (Result, error) {
	now := b.sys.Now()
	if len(args) == 0 {
		return ok(now.Format("15:04:05"))
	}

	requested := make(map[string]bool, len(args))
	for _, arg := range args {
		requested[arg] = true
	}

	var label strings.Builder
	var values []string
	for _, field := range timeFields {
		if !requested[field.flag] {
			continue
		}
		label.WriteString(field.label)
		values = append(values, now.Format(field.layout))
	}

	if len(values) == 0 {
		return fail(newError(UsageError, nil, "Invalid flag. Usage: time [-hours] [-mins] [-secs]"))
	}
	return ok(label.String() + " -  " + strings.Join(values, ":"))
}
