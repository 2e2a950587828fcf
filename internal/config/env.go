package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// applyEnv overrides tagged fields of the struct pointed to by target with the
// environment variables named in their `env` tags. Nested structs are walked.
// It returns the variables that were applied. Unset or empty variables are skipped
// so they never clear a value that came from the file.
func applyEnv(target interface{}) ([]string, error) {
	root := reflect.ValueOf(target)
	if root.Kind() != reflect.Ptr || root.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("config target must be a struct pointer, got %T", target)
	}

	var applied []string
	err := walkEnv(root.Elem(), "", &applied)
	return applied, err
}

func walkEnv(v reflect.Value, path string, applied *[]string) error {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field, meta := v.Field(i), t.Field(i)
		name := strings.TrimPrefix(path+"."+meta.Name, ".")

		if field.Kind() == reflect.Struct {
			if err := walkEnv(field, name, applied); err != nil {
				return err
			}
			continue
		}

		key := meta.Tag.Get("env")
		if key == "" {
			continue
		}
		raw, ok := os.LookupEnv(key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}

		if err := assign(field, strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%s (from %s): %w", name, key, err)
		}
		*applied = append(*applied, key)
	}
	return nil
}

func assign(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", raw)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
