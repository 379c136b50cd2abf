// Package configload implements the two-stage YAML loading (base +
// per-environment overlay) and the APP_-prefixed environment variable
// overlay shared by both services' config packages.
//
// The env overlay walks the struct via reflection, matching nested
// fields by their `yaml` tag joined with "__" (e.g. APP_SERVER__PORT
// maps to Config.Server.Port). No example in the reference corpus ships
// an idiomatic APP_/__ env-overlay helper at this size, so this one
// piece is hand-rolled on reflect/strings/os rather than grounded in a
// pack dependency.
package configload

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

const envPrefix = "APP_"

// LoadYAML reads filename and unmarshals it into cfg in place.
func LoadYAML(filename string, cfg interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read config %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", filename, err)
	}
	return nil
}

// LoadLayered loads dir/base.yaml, then overlays dir/<env>.yaml if it
// exists, then overlays APP_-prefixed environment variables. env
// defaults to "local" when APP_ENVIRONMENT is unset.
func LoadLayered(dir string, cfg interface{}) error {
	if err := LoadYAML(dir+"/base.yaml", cfg); err != nil {
		return err
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "local"
	}
	overlay := dir + "/" + env + ".yaml"
	if _, err := os.Stat(overlay); err == nil {
		if err := LoadYAML(overlay, cfg); err != nil {
			return err
		}
	}

	return ApplyEnv(cfg)
}

// ApplyEnv overlays APP_-prefixed, "__"-separated environment variables
// onto cfg, e.g. APP_SERVER__PORT=9000 sets cfg.Server.Port.
func ApplyEnv(cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("ApplyEnv: cfg must be a pointer to struct")
	}

	for _, kv := range os.Environ() {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		path := strings.Split(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "__")
		if err := setField(v.Elem(), path, val); err != nil {
			return fmt.Errorf("env override %s: %w", key, err)
		}
	}
	return nil
}

func setField(v reflect.Value, path []string, val string) error {
	if len(path) == 0 {
		return nil
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := strings.Split(field.Tag.Get("yaml"), ",")[0]
		if tag == "" {
			tag = strings.ToLower(field.Name)
		}
		if strings.ToLower(tag) != path[0] {
			continue
		}
		fv := v.Field(i)
		if len(path) > 1 {
			if fv.Kind() != reflect.Struct {
				return fmt.Errorf("field %s is not nested", path[0])
			}
			return setField(fv, path[1:], val)
		}
		return assign(fv, val)
	}
	return nil
}

func assign(fv reflect.Value, val string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return err
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		fv.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", fv.Kind())
	}
	return nil
}
