// Copyright 2026 The rbmkgo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reactor

import (
	_ "embed"
	"os"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the file-loadable form of Constants (the same fields, with
// yaml tags), so a deployment can retune the numeric contract without a
// rebuild.
type Config struct {
	GraphiteWidth             float64 `yaml:"graphite_width"`
	AbsorberLength            float64 `yaml:"absorber_length"`
	ShortAbsorberLength       float64 `yaml:"short_absorber_length"`
	SourceLength              float64 `yaml:"source_length"`
	RodInsertSpeed            float64 `yaml:"rod_insert_speed"`
	RodScramSpeed             float64 `yaml:"rod_scram_speed"`
	SourceStrength            float64 `yaml:"source_strength"`
	Enrichment                float64 `yaml:"enrichment"`
	U235Neutrons              float64 `yaml:"u235_neutrons"`
	GraphiteAbsMCS            float64 `yaml:"graphite_abs_mcs"`
	B4CAbsMCS                 float64 `yaml:"b4c_abs_mcs"`
	U235FissionMCS            float64 `yaml:"u235_fission_mcs"`
	U235AbsMCS                float64 `yaml:"u235_abs_mcs"`
	U238AbsMCS                float64 `yaml:"u238_abs_mcs"`
	WaterAbsMCS               float64 `yaml:"water_abs_mcs"`
	UVolume                   float64 `yaml:"u_volume"`
	PressureTubeInnerDiameter float64 `yaml:"pressure_tube_inner_diameter"`
	GraphiteHolesDiameter     float64 `yaml:"graphite_holes_diameter"`
	RodDiameter               float64 `yaml:"rod_diameter"`
	PromptGenTime             float64 `yaml:"prompt_gen_time"`
	TelemetryDt               float64 `yaml:"telemetry_dt"`
}

// LoadConfig merges the embedded numeric defaults with an optional
// override file (only present fields are replaced), following the
// defaults-then-override yaml.Unmarshal idiom.
func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, chk.Err("parsing embedded config defaults: %v", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, chk.Err("reading config file %q: %v", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, chk.Err("parsing config file %q: %v", path, err)
		}
	}
	return cfg, nil
}

// Constants converts a Config into the Constants the reactor core uses.
func (c Config) Constants() Constants {
	return Constants{
		GraphiteWidth:             c.GraphiteWidth,
		AbsorberLength:            c.AbsorberLength,
		ShortAbsorberLength:       c.ShortAbsorberLength,
		SourceLength:              c.SourceLength,
		RodInsertSpeed:            c.RodInsertSpeed,
		RodScramSpeed:             c.RodScramSpeed,
		SourceStrength:            c.SourceStrength,
		Enrichment:                c.Enrichment,
		U235Neutrons:              c.U235Neutrons,
		GraphiteAbsMCS:            c.GraphiteAbsMCS,
		B4CAbsMCS:                 c.B4CAbsMCS,
		U235FissionMCS:            c.U235FissionMCS,
		U235AbsMCS:                c.U235AbsMCS,
		U238AbsMCS:                c.U238AbsMCS,
		WaterAbsMCS:               c.WaterAbsMCS,
		UVolume:                   c.UVolume,
		PressureTubeInnerDiameter: c.PressureTubeInnerDiameter,
		GraphiteHolesDiameter:     c.GraphiteHolesDiameter,
		RodDiameter:               c.RodDiameter,
		PromptGenTime:             c.PromptGenTime,
		TelemetryDt:               c.TelemetryDt,
	}
}

// NewFromConfig constructs a Reactor from a loaded Config.
func NewFromConfig(cfg Config) (*Reactor, error) {
	return NewWithConstants(cfg.Constants(), nil)
}
