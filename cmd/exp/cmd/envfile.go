package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	exp "github.com/cwbudde/go-exp"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

// loadEnvFile reads a JSON or YAML environment file and converts it into
// an environment object. The file's top level must be a mapping.
func loadEnvFile(path string) (*exp.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return envFromJSON(path, data)
	case ".yaml", ".yml":
		return envFromYAML(path, data)
	default:
		return nil, fmt.Errorf("unsupported environment file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

func envFromJSON(path string, data []byte) (*exp.Object, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("environment file %s is not valid JSON", path)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("environment file %s must contain a JSON object at the top level", path)
	}
	obj, ok := valueFromJSON(root).(*exp.Object)
	if !ok {
		return nil, fmt.Errorf("environment file %s must contain a JSON object at the top level", path)
	}
	return obj, nil
}

// valueFromJSON converts a parsed JSON node into a runtime value.
func valueFromJSON(r gjson.Result) exp.Value {
	switch {
	case r.Type == gjson.Null:
		return exp.Null
	case r.Type == gjson.True:
		return exp.Bool(true)
	case r.Type == gjson.False:
		return exp.Bool(false)
	case r.Type == gjson.Number:
		return exp.Number(r.Float())
	case r.Type == gjson.String:
		return exp.Str(r.String())
	case r.IsArray():
		items := r.Array()
		elements := make([]exp.Value, len(items))
		for i, item := range items {
			elements[i] = valueFromJSON(item)
		}
		return exp.NewArray(elements...)
	case r.IsObject():
		fields := map[string]exp.Value{}
		r.ForEach(func(key, value gjson.Result) bool {
			fields[key.String()] = valueFromJSON(value)
			return true
		})
		return exp.NewObject(fields)
	default:
		return exp.Null
	}
}

func envFromYAML(path string, data []byte) (*exp.Object, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("environment file %s is not valid YAML: %w", path, err)
	}
	v, err := exp.FromGo(raw)
	if err != nil {
		return nil, fmt.Errorf("environment file %s: %w", path, err)
	}
	obj, ok := v.(*exp.Object)
	if !ok {
		return nil, fmt.Errorf("environment file %s must contain a mapping at the top level", path)
	}
	return obj, nil
}
