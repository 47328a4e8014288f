// Copyright 2026 The Plume Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package site

import (
	"github.com/hesym/plume/utils"
)

const (
	ConfigFileName = "site.yml"
	MenuFileName   = "menu.txt"

	// PageFileBase is the filename stem reserved for directory-style
	// pages: a page at logical path "foo" may live in foo/page.mdown.
	PageFileBase = "page"

	DefaultContentDir = "content"
)

type Config struct {
	Name   string `yaml:"name"`
	Author string `yaml:"author"`
	URL    string `yaml:"url"`

	// ContentRoot holds attachments and the menu file; PageRoot holds
	// page sources. They coincide unless configured apart.
	ContentRoot string `yaml:"content_root"`
	PageRoot    string `yaml:"page_root"`

	Filters map[string]interface{} `yaml:"filters"`
}

// ReadConfig reads the site configuration from a YAML file and fills
// in defaults.
func ReadConfig(filename string) (*Config, error) {
	var c Config
	if err := utils.UnmarshallYAMLFile(filename, &c); err != nil {
		return nil, err
	}
	c.setDefaults()
	return &c, nil
}

func (c *Config) setDefaults() {
	if c.ContentRoot == "" {
		c.ContentRoot = DefaultContentDir
	}
	if c.PageRoot == "" {
		c.PageRoot = c.ContentRoot
	}
	c.URL = utils.StripEndSlash(c.URL)
}
