package rating

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"predictably-core/object"
)

// Serialization follows a fixed dictionary shape keyed by
// "rating_system_type", so exported systems can be stored, inspected and
// reconstructed without knowing the concrete Go type up front.

// ToDict exports the system as a plain dictionary.
func (s *System) ToDict() map[string]any {
	return map[string]any{
		"rating_system_type": object.TypeNameOf(s),
		"rating_scale":       s.Scale.Map(),
		"metadata":           s.Meta.Map(),
		"config":             s.Config,
	}
}

// ToJSON exports the system as a JSON document. A non-positive indent
// produces compact output.
func (s *System) ToJSON(indent int) (string, error) {
	return dictToJSON(s.ToDict(), indent)
}

// ToYAML exports the system as a YAML document.
func (s *System) ToYAML() ([]byte, error) {
	return yaml.Marshal(s.ToDict())
}

// ToDict exports the system as a plain dictionary.
func (s *PDLGDSystem) ToDict() map[string]any {
	return map[string]any{
		"rating_system_type": object.TypeNameOf(s),
		"pd_rating_scale":    s.PDScale.Map(),
		"lgd_rating_scale":   s.LGDScale.Map(),
		"metadata":           s.Meta.Map(),
		"config":             s.Config,
	}
}

// ToJSON exports the system as a JSON document. A non-positive indent
// produces compact output.
func (s *PDLGDSystem) ToJSON(indent int) (string, error) {
	return dictToJSON(s.ToDict(), indent)
}

// ToYAML exports the system as a YAML document.
func (s *PDLGDSystem) ToYAML() ([]byte, error) {
	return yaml.Marshal(s.ToDict())
}

// SystemFromDict reconstructs a one-dimensional system from its dictionary
// form. The scale is ordered the way the configuration declares its grades.
func SystemFromDict(data map[string]any) (*System, error) {
	cfg, err := configFromValue(data["config"])
	if err != nil {
		return nil, err
	}

	scale, err := scaleFromValue(data["rating_scale"])
	if err != nil {
		return nil, err
	}

	meta, err := metadataFromValue(data["metadata"])
	if err != nil {
		return nil, err
	}

	return NewSystem(cfg, scaleInConfigOrder(cfg.RequiredGrades, scale), meta)
}

// PDLGDSystemFromDict reconstructs a two-dimensional system from its
// dictionary form.
func PDLGDSystemFromDict(data map[string]any) (*PDLGDSystem, error) {
	cfg, err := twoDimensionalConfigFromValue(data["config"])
	if err != nil {
		return nil, err
	}

	pd, err := scaleFromValue(data["pd_rating_scale"])
	if err != nil {
		return nil, err
	}

	lgd, err := scaleFromValue(data["lgd_rating_scale"])
	if err != nil {
		return nil, err
	}

	meta, err := metadataFromValue(data["metadata"])
	if err != nil {
		return nil, err
	}

	return NewPDLGDSystem(cfg,
		scaleInConfigOrder(cfg.RequiredGradeDimensions[DimensionPD], pd),
		scaleInConfigOrder(cfg.RequiredGradeDimensions[DimensionLGD], lgd),
		meta)
}

// SystemFromJSON reconstructs a one-dimensional system from a JSON
// document produced by ToJSON.
func SystemFromJSON(doc []byte) (*System, error) {
	data, err := unmarshalDict(doc, json.Unmarshal, "json")
	if err != nil {
		return nil, err
	}

	return SystemFromDict(data)
}

// SystemFromYAML reconstructs a one-dimensional system from a YAML
// document produced by ToYAML.
func SystemFromYAML(doc []byte) (*System, error) {
	data, err := unmarshalDict(doc, yaml.Unmarshal, "yaml")
	if err != nil {
		return nil, err
	}

	return SystemFromDict(data)
}

// PDLGDSystemFromJSON reconstructs a two-dimensional system from a JSON
// document produced by ToJSON.
func PDLGDSystemFromJSON(doc []byte) (*PDLGDSystem, error) {
	data, err := unmarshalDict(doc, json.Unmarshal, "json")
	if err != nil {
		return nil, err
	}

	return PDLGDSystemFromDict(data)
}

// PDLGDSystemFromYAML reconstructs a two-dimensional system from a YAML
// document produced by ToYAML.
func PDLGDSystemFromYAML(doc []byte) (*PDLGDSystem, error) {
	data, err := unmarshalDict(doc, yaml.Unmarshal, "yaml")
	if err != nil {
		return nil, err
	}

	return PDLGDSystemFromDict(data)
}

// ConfigFromMap decodes a one-dimensional configuration from a plain map.
func ConfigFromMap(m map[string]any) (Config, error) {
	var cfg Config
	if err := decodeStrict(m, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// TwoDimensionalConfigFromMap decodes a two-dimensional configuration from
// a plain map.
func TwoDimensionalConfigFromMap(m map[string]any) (TwoDimensionalConfig, error) {
	var cfg TwoDimensionalConfig
	if err := decodeStrict(m, &cfg); err != nil {
		return TwoDimensionalConfig{}, err
	}

	return cfg, nil
}

// ConfigFromYAML decodes a one-dimensional configuration from a YAML
// document.
func ConfigFromYAML(doc []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return Config{}, &InputError{Reason: "yaml: " + err.Error()}
	}

	return cfg, nil
}

// TwoDimensionalConfigFromYAML decodes a two-dimensional configuration
// from a YAML document.
func TwoDimensionalConfigFromYAML(doc []byte) (TwoDimensionalConfig, error) {
	var cfg TwoDimensionalConfig
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return TwoDimensionalConfig{}, &InputError{Reason: "yaml: " + err.Error()}
	}

	return cfg, nil
}

func dictToJSON(data map[string]any, indent int) (string, error) {
	var (
		out []byte
		err error
	)

	if indent > 0 {
		out, err = json.MarshalIndent(data, "", strings.Repeat(" ", indent))
	} else {
		out, err = json.Marshal(data)
	}

	if err != nil {
		return "", &InputError{Reason: "json: " + err.Error()}
	}

	return string(out), nil
}

func unmarshalDict(doc []byte, unmarshal func([]byte, any) error, format string) (map[string]any, error) {
	var data map[string]any
	if err := unmarshal(doc, &data); err != nil {
		return nil, &InputError{Reason: format + ": " + err.Error()}
	}

	return data, nil
}

func configFromValue(v any) (Config, error) {
	if cfg, ok := v.(Config); ok {
		return cfg.CloneValue().(Config), nil
	}

	var cfg Config
	if err := decodeStrict(v, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func twoDimensionalConfigFromValue(v any) (TwoDimensionalConfig, error) {
	if cfg, ok := v.(TwoDimensionalConfig); ok {
		return cfg.CloneValue().(TwoDimensionalConfig), nil
	}

	var cfg TwoDimensionalConfig
	if err := decodeStrict(v, &cfg); err != nil {
		return TwoDimensionalConfig{}, err
	}

	return cfg, nil
}

func scaleFromValue(v any) (map[Grade]float64, error) {
	var m map[Grade]float64
	if err := decodeStrict(v, &m); err != nil {
		return nil, err
	}

	return m, nil
}

func metadataFromValue(v any) (*Metadata, error) {
	var m map[string]any
	if err := decodeStrict(v, &m); err != nil {
		return nil, err
	}

	return NewMetadata(m)
}

func decodeStrict(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: out})
	if err != nil {
		return &InputError{Reason: err.Error()}
	}

	if err := dec.Decode(in); err != nil {
		return &InputError{Reason: fmt.Sprintf("cannot decode %T: %v", in, err)}
	}

	return nil
}
