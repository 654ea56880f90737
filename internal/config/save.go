package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// WriteDefault writes a commented default config file to path, creating
// parent directories as needed. Returns an error if the file already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file: %w", err)
	}

	doc := defaultConfigNode()

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	// Write atomically (write to temp, then rename)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".config.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(buf.Bytes()); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// defaultConfigNode builds the default config as a yaml.Node tree so the
// written file carries explanatory comments.
func defaultConfigNode() *yaml.Node {
	def := Default()

	scalar := func(value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
	}
	key := func(name, comment string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Value: name, HeadComment: comment}
	}

	uiNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			key("show_line_numbers", "Show the line number gutter."),
			scalar(strconv.FormatBool(def.UI.ShowLineNumbers)),
			key("placeholder", "Text shown when the commit message file is empty."),
			scalar(def.UI.Placeholder),
			key("auto_wrap", "Reflow body lines at 72 columns while typing."),
			scalar(strconv.FormatBool(def.UI.AutoWrap)),
		},
	}

	themeNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			key("mode", "Force \"light\" or \"dark\"; empty uses terminal detection.\nAdd a colors map to override tokens, e.g.\n  colors:\n    status.warning: \"#FFAA00\""),
			scalar(def.Theme.Mode),
		},
	}

	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			key("ui", ""),
			uiNode,
			key("theme", ""),
			themeNode,
			key("watch_file", "Warn when the commit message file changes on disk."),
			scalar(strconv.FormatBool(def.WatchFile)),
		},
	}

	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
}
