// Package config loads program configuration: embedded template with sane
// defaults superimposed with user supplied file.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"chtlc/common"
	"chtlc/dispatch"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	CompilerConfig struct {
		Structural      common.StructuralMode `yaml:"structural" validate:"gte=0"`
		CSS             common.CSSMode        `yaml:"css" validate:"gte=0"`
		JS              common.JSMode         `yaml:"js" validate:"gte=0"`
		Workers         int                   `yaml:"workers" validate:"gte=0,lte=256"`
		Strict          bool                  `yaml:"strict"`
		Validate        bool                  `yaml:"validate"`
		NormalizeColors bool                  `yaml:"normalize_colors"`
		ScopeAttr       string                `yaml:"scope_attr" validate:"required,startswith=data-"`
		ClassPrefix     string                `yaml:"class_prefix" validate:"required,alphanum"`
		Library         string                `yaml:"library" sanitize:"assure_file_access"`
	}

	ShellConfig struct {
		Enable       bool   `yaml:"enable"`
		TemplatePath string `yaml:"template_path" sanitize:"assure_file_access"`
		Title        string `yaml:"title"`
		Lang         string `yaml:"lang" validate:"required_if=Enable true"`
	}

	OutputConfig struct {
		Extension             string      `yaml:"extension" validate:"required,startswith=."`
		OutputNameTemplate    string      `yaml:"output_name_template"`
		FileNameTransliterate bool        `yaml:"file_name_transliterate"`
		Shell                 ShellConfig `yaml:"shell"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Compiler  CompilerConfig `yaml:"compiler"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// NOTE: must match yaml field names above.
const (
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
	ShellTitleFieldName         TemplateFieldName = "title"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(ShellTitleFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields we defined are allowed, so no yaml.Unmarshal here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

// DispatchOptions translates compiler section into dispatcher options.
// Template library, if configured, is loaded here.
func (conf *CompilerConfig) DispatchOptions() (dispatch.Options, error) {
	opts := dispatch.Options{
		Structural:      conf.Structural,
		CSS:             conf.CSS,
		JS:              conf.JS,
		ScopeAttr:       conf.ScopeAttr,
		Workers:         conf.Workers,
		Strict:          conf.Strict,
		Validate:        conf.Validate,
		NormalizeColors: conf.NormalizeColors,
		ClassPrefix:     conf.ClassPrefix,
	}
	if conf.Library != "" {
		lib, err := dispatch.LoadLibrary(conf.Library)
		if err != nil {
			return opts, err
		}
		opts.Library = lib
	}
	return opts, nil
}
