package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/theme"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
	zerrors "github.com/alexisbeaulieu97/zoomies/pkg/errors"
)

// Overrides is the token overrides document. Keys absent from a table are added.
type Overrides struct {
	Space  map[string]int    `yaml:"space" validate:"dive,keys,token_key,endkeys,min=0,max=4096"`
	Radius map[string]int    `yaml:"radius" validate:"dive,keys,token_key,endkeys,min=0,max=999"`
	ZIndex map[string]int    `yaml:"zIndex" validate:"dive,keys,token_key,endkeys,min=0"`
	Color  map[string]string `yaml:"color" validate:"dive,keys,token_key,endkeys,hexcolor|rgba|rgb"`

	Themes ThemeOverrides `yaml:"themes"`

	Media map[string]MediaOverride `yaml:"media" validate:"dive,keys,token_key,endkeys"`
}

// ThemeOverrides replaces color values per theme.
type ThemeOverrides struct {
	Light map[string]string `yaml:"light" validate:"dive,keys,token_key,endkeys,hexcolor|rgba|rgb"`
	Dark  map[string]string `yaml:"dark" validate:"dive,keys,token_key,endkeys,hexcolor|rgba|rgb"`
}

// MediaOverride redefines a width or height condition. Zero bounds are unset.
type MediaOverride struct {
	MinWidth  int `yaml:"minWidth" validate:"min=0"`
	MaxWidth  int `yaml:"maxWidth" validate:"omitempty,gtefield=MinWidth"`
	MinHeight int `yaml:"minHeight" validate:"min=0"`
	MaxHeight int `yaml:"maxHeight" validate:"omitempty,gtefield=MinHeight"`
}

// Empty reports whether the document overrides nothing.
func (o Overrides) Empty() bool {
	return len(o.Space) == 0 && len(o.Radius) == 0 && len(o.ZIndex) == 0 && len(o.Color) == 0 &&
		len(o.Themes.Light) == 0 && len(o.Themes.Dark) == 0 && len(o.Media) == 0
}

var (
	yamlLineRegex   = regexp.MustCompile(`line (\d+)`)
	tokenKeyPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)

	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("token_key", func(fl validator.FieldLevel) bool {
			return tokenKeyPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// LoadOverrides reads and validates an overrides document from disk.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, zerrors.NewParseError(path, 0, err)
	}
	return ParseOverrides(path, data)
}

// ParseOverrides decodes and validates an overrides document. Unknown fields are
// rejected.
func ParseOverrides(path string, data []byte) (Overrides, error) {
	var o Overrides
	if len(bytes.TrimSpace(data)) == 0 {
		return o, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		return Overrides{}, zerrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(o); err != nil {
		return Overrides{}, convertValidationError(err)
	}
	return o, nil
}

// WithOverrides returns a copy of c with the overrides applied.
func (c *Config) WithOverrides(o Overrides) *Config {
	out := c.clone()

	for _, key := range sortedKeys(o.Space) {
		out.space = out.space.With(tokens.Key(key), o.Space[key])
	}
	out.size = out.size.WithLengths(out.space)
	for _, key := range sortedKeys(o.Radius) {
		out.radius = out.radius.With(tokens.Key(key), o.Radius[key])
	}
	for _, key := range sortedKeys(o.ZIndex) {
		out.zIndex = out.zIndex.With(tokens.Key(key), o.ZIndex[key])
	}

	for _, key := range sortedKeys(o.Color) {
		out.colors[key] = o.Color[key]
	}

	applyColors := func(name string, colors map[string]string) {
		values, ok := out.themes[name]
		if !ok {
			return
		}
		for _, key := range sortedKeys(colors) {
			values = values.With(key, colors[key])
		}
		out.themes[name] = values
	}
	applyColors(theme.NameLight, o.Themes.Light)
	applyColors(theme.NameDark, o.Themes.Dark)

	for _, name := range sortedKeys(o.Media) {
		m := o.Media[name]
		q, _ := out.media.Lookup(name)
		q.MinWidth, q.MaxWidth = m.MinWidth, m.MaxWidth
		q.MinHeight, q.MaxHeight = m.MinHeight, m.MaxHeight
		out.media = out.media.With(name, q)
	}
	return out
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return zerrors.NewValidationError(field, msg, err)
	}

	return zerrors.NewValidationError("overrides", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
