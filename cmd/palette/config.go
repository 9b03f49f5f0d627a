// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"cogentcore.org/palette/colors"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is the config file looked for in the
// current directory when no --config flag is given.
const DefaultConfigFile = "palette.toml"

// Config is the configuration for the palette tool. It is read from
// a TOML file, and any command line flags that are set override it.
type Config struct {

	// the base color of generated palettes, as a hex value or CSS color name
	Base string `toml:"base" validate:"required,color"`

	// the palette scheme: monochromatic, analogous, triadic, complementary, or random
	Scheme string `toml:"scheme"`

	// the number of colors in generated palettes
	Count int `toml:"count" validate:"gte=1,lte=64"`

	// the output format of colors: hex, rgb, or hsl
	Format string `toml:"format"`

	// whether to print each color on a swatch of itself
	Swatches bool `toml:"swatches"`

	// the random seed for the random scheme; 0 means a new seed on every run
	Seed int64 `toml:"seed"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Base:     "#41b883",
		Scheme:   "analogous",
		Count:    5,
		Format:   "hex",
		Swatches: true,
	}
}

// LoadConfig returns the default configuration overridden by the
// TOML file at the given path. If path is empty, [DefaultConfigFile]
// is used if it exists. The result is not validated; see [Config.Validate].
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no config file", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	slog.Debug("loaded config", "path", path)
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("toml"), ",")
		if name == "" {
			return fld.Name
		}
		return name
	})
	err := v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
		_, err := colors.FromString(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate returns an error describing every invalid field of the config.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, e := range verrs {
		msgs[i] = e.Field() + " " + friendlyMessage(e)
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "color":
		return fmt.Sprintf("must be a hex color or color name, not %q", e.Value())
	case "gte":
		return "must be at least " + e.Param()
	case "lte":
		return "must be at most " + e.Param()
	}
	return "is invalid"
}
