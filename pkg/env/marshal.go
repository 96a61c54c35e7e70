package env

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var ErrNotStruct = errors.New("env: expected pointer to struct")

// MarshalEnv renders every env-tagged field of the struct c points to as KEY=value lines,
// in field order. Zero values are written too, so the output reflects the effective config.
// Values that godotenv would not read back verbatim are double-quoted.
func MarshalEnv(c any) (string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return "", ErrNotStruct
	}
	v = v.Elem()
	t := v.Type()

	var sb strings.Builder
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// "KEY,required,notEmpty" -> "KEY"
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" {
			continue
		}

		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(quote(formatValue(v.Field(i))))
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t#\"'\\=") || strings.TrimSpace(s) != s {
		return strconv.Quote(s)
	}
	return s
}

// formatValue converts a reflect.Value to its string representation
func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
