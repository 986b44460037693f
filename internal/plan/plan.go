// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package plan describes timer workloads for the scheduler.
// A plan lists tasks, each sleeping through a sequence of delays.
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/coeff/sched"
)

var (
	// ErrUnknownFormat is returned for plan files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("unknown plan format")
	// ErrInvalid is wrapped by every validation error.
	ErrInvalid = errors.New("invalid plan")
)

// Format is a plan file encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Duration is a time.Duration written as a Go duration string ("1.5s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Task is one scheduled task of a plan.
type Task struct {
	Name   string     `toml:"name" yaml:"name"`
	Delays []Duration `toml:"delays" yaml:"delays"`
}

// Plan is a set of tasks to run on one scheduler.
type Plan struct {
	Tasks []Task `toml:"tasks" yaml:"tasks"`
}

// Default returns the single-task workload: five one-second waits
// followed by one five-second wait.
func Default() *Plan {
	delays := make([]Duration, 0, 6)
	for range 5 {
		delays = append(delays, Duration{time.Second})
	}
	delays = append(delays, Duration{5 * time.Second})
	return &Plan{Tasks: []Task{{Name: "main", Delays: delays}}}
}

// Load reads and validates the plan at path.
func Load(path string) (*Plan, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	return Decode(bytes.NewReader(b), format)
}

// Decode reads and validates a plan in the given format.
func Decode(r io.Reader, format Format) (*Plan, error) {
	p := new(Plan)
	switch format {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(p); err != nil {
			return nil, fmt.Errorf("decoding toml plan: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(p); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding yaml plan: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that task names are unique and non-empty and that no
// delay is negative.
func (p *Plan) Validate() error {
	if len(p.Tasks) == 0 {
		return fmt.Errorf("%w: no tasks", ErrInvalid)
	}
	seen := make(map[string]bool, len(p.Tasks))
	for i, t := range p.Tasks {
		if t.Name == "" {
			return fmt.Errorf("%w: task %d has no name", ErrInvalid, i)
		}
		if seen[t.Name] {
			return fmt.Errorf("%w: duplicate task %q", ErrInvalid, t.Name)
		}
		seen[t.Name] = true
		for _, d := range t.Delays {
			if d.Duration < 0 {
				return fmt.Errorf("%w: task %q has negative delay %s", ErrInvalid, t.Name, d.Duration)
			}
		}
	}
	return nil
}

// Total returns the sum of the task's delays.
func (t Task) Total() time.Duration {
	var total time.Duration
	for _, d := range t.Delays {
		total += d.Duration
	}
	return total
}

// Routine returns a scheduler routine that sleeps through the task's
// delays in order, logging before each wait.
func (t Task) Routine(log logr.Logger) sched.Routine {
	log = log.WithValues("task", t.Name)
	return sched.Func(func(yield func(sched.Effect) struct{}) {
		log.Info("begin")
		for i, d := range t.Delays {
			log.Info("waiting", "step", i, "delay", d.Duration)
			sched.Sleep(yield, d.Duration)
		}
		log.Info("end")
	})
}

// Spawn enqueues every task of the plan on s in order.
func (p *Plan) Spawn(s *sched.Scheduler, log logr.Logger) []*sched.Task {
	tasks := make([]*sched.Task, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, s.Spawn(t.Name, t.Routine(log)))
	}
	return tasks
}
