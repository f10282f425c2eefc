// Package printf implements the lenient printf-style interpolation used for
// error message templates.
//
// Unlike fmt.Sprintf it never reports %!verb(MISSING) or %!(EXTRA ...):
//   - a verb with no argument left is written back literally;
//   - surplus arguments are appended, space-separated, after the template;
//   - unknown verbs are written back literally and consume no argument.
//
// Supported verbs:
//
//	%s  string form (Error() for errors, String() for Stringers, %v otherwise)
//	%d  number; integers as-is, floats as their shortest decimal form
//	%i  integer; floats are truncated toward zero
//	%f  floating point
//	%j  JSON encoding; values json cannot encode fall back to %v
//	%o  verbose value (%+v)
//	%O  Go-syntax value (%#v)
//	%v  Go default format
//	%q  quoted string
//	%%  a literal percent sign (consumes no argument)
package printf

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Format interpolates args into template.
func Format(template string, args ...any) string {
	if len(args) == 0 && !strings.Contains(template, "%%") {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template) + 8*len(args))

	next := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 == len(template) {
			sb.WriteByte(c)
			continue
		}
		verb := template[i+1]
		if verb == '%' {
			sb.WriteByte('%')
			i++
			continue
		}
		if !isVerb(verb) || next >= len(args) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteString(render(verb, args[next]))
		next++
		i++
	}

	for _, a := range args[next:] {
		sb.WriteByte(' ')
		sb.WriteString(render('s', a))
	}
	return sb.String()
}

func isVerb(b byte) bool {
	switch b {
	case 's', 'd', 'i', 'f', 'j', 'o', 'O', 'v', 'q':
		return true
	}
	return false
}

func render(verb byte, arg any) string {
	switch verb {
	case 's':
		return str(arg)
	case 'd':
		return number(arg, false)
	case 'i':
		return number(arg, true)
	case 'f':
		if f, ok := toFloat(arg); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return "NaN"
	case 'j':
		b, err := json.Marshal(arg)
		if err != nil {
			return fmt.Sprintf("%v", arg)
		}
		return string(b)
	case 'o':
		return fmt.Sprintf("%+v", arg)
	case 'O':
		return fmt.Sprintf("%#v", arg)
	case 'q':
		return strconv.Quote(str(arg))
	default:
		return fmt.Sprintf("%v", arg)
	}
}

func str(arg any) string {
	switch v := arg.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case error, fmt.Stringer:
		// fmt recovers from methods called on nil receivers.
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("%v", arg)
}

// number renders integers exactly and everything else through toFloat.
func number(arg any, trunc bool) string {
	if arg != nil {
		rv := reflect.ValueOf(arg)
		switch {
		case rv.CanInt():
			return strconv.FormatInt(rv.Int(), 10)
		case rv.CanUint():
			return strconv.FormatUint(rv.Uint(), 10)
		}
	}
	f, ok := toFloat(arg)
	if !ok {
		return "NaN"
	}
	if trunc {
		f = math.Trunc(f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// toFloat converts numeric values and numeric strings to float64.
func toFloat(arg any) (float64, bool) {
	if s, ok := arg.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	if b, ok := arg.(bool); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	if arg == nil {
		return 0, false
	}
	rv := reflect.ValueOf(arg)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}
	return 0, false
}
