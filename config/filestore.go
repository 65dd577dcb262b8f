// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"
)

const AppName = "svggraph"
const configFileVersion = 1

var ErrNewerFileVersion = errors.New("configuration file was written by a newer release")

type FileHeader struct {
	FileVersion int
}

// fileLayout is the yaml document of a configuration file, header and chart settings
// on the same level.
type fileLayout struct {
	Header FileHeader  `yaml:",inline"`
	Chart  ChartConfig `yaml:",inline"`
}

// FileStore keeps a chart configuration in a yaml file. The file is read on first access,
// a missing file yields the default configuration.
type FileStore struct {
	path   string
	logger *log.Logger
	mutex  sync.Mutex
	loaded bool
	cfg    ChartConfig
}

func NewFileStore(path string, logger *log.Logger) Store {
	if logger == nil {
		logger = log.Default()
	}
	return &FileStore{
		path:   path,
		logger: logger,
		cfg:    NewChartConfig(),
	}
}

// Load reads and validates a configuration file.
func Load(path string, logger *log.Logger) (ChartConfig, error) {
	c, err := NewFileStore(path, logger).Copy()
	if err != nil {
		return ChartConfig{}, err
	}
	return c, c.Validate()
}

// Fix rewrites a configuration file with all invalid settings reset to their defaults.
// The repaired problems are returned. A missing file is created with default settings.
func Fix(path string, logger *log.Logger) ([]error, error) {
	s := NewFileStore(path, logger)
	c, err := s.Lock()
	if err != nil {
		return nil, err
	}
	problems := c.Repair()
	return problems, s.Unlock(c, true)
}

func (s *FileStore) GetName() string {
	return s.path
}

// Lock returns a modifiable copy of the configuration. Unless an error is returned,
// Unlock has to be called afterwards.
func (s *FileStore) Lock() (*ChartConfig, error) {
	s.mutex.Lock()
	if err := s.load(); err != nil {
		s.mutex.Unlock()
		return nil, err
	}
	c := s.cfg.deepCopy()
	return &c, nil
}

// Unlock stores c. The file is only written if c was changed or forceWriting is set,
// and only if c is valid.
func (s *FileStore) Unlock(c *ChartConfig, forceWriting bool) error {
	defer s.mutex.Unlock()
	if !forceWriting && cmp.Equal(s.cfg, *c, cmpopts.EquateEmpty()) {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	s.cfg = *c
	return s.save()
}

func (s *FileStore) Copy() (ChartConfig, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if err := s.load(); err != nil {
		return ChartConfig{}, err
	}
	return s.cfg.deepCopy(), nil
}

func (s *FileStore) load() error {
	if s.loaded {
		return nil
	}
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Printf("%s not found, using the default chart configuration", s.path)
	case err != nil:
		return fmt.Errorf("reading %s: %w", s.path, err)
	default:
		if s.cfg, err = decodeConfig(data); err != nil {
			return fmt.Errorf("%s: %w", s.path, err)
		}
	}
	s.loaded = true
	return nil
}

func (s *FileStore) save() error {
	data, err := encodeConfig(s.cfg)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	// Replace the file only once it is completely written.
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

func decodeConfig(data []byte) (ChartConfig, error) {
	var h FileHeader
	if err := yaml.Unmarshal(data, &h); err != nil {
		return ChartConfig{}, fmt.Errorf("decoding file version: %w", err)
	}
	// Saving would drop settings unknown to this release.
	if h.FileVersion > configFileVersion {
		return ChartConfig{}, fmt.Errorf("%w: version %d, supported up to %d",
			ErrNewerFileVersion, h.FileVersion, configFileVersion)
	}
	c := NewChartConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return ChartConfig{}, fmt.Errorf("decoding chart configuration: %w", err)
	}
	c.Sanitize()
	return c, nil
}

// encodeConfig leaves out defaults, so that changing a default also changes existing files.
func encodeConfig(c ChartConfig) ([]byte, error) {
	c.Sanitize()
	c.RemoveDefaults()
	return yaml.Marshal(&fileLayout{
		Header: FileHeader{FileVersion: configFileVersion},
		Chart:  c,
	})
}
