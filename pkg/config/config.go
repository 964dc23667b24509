package config

// Config is the merged figart configuration
type Config struct {
	Font    FontConfig    `koanf:"font" toml:"font"`
	List    ListConfig    `koanf:"list" toml:"list"`
	Preview PreviewConfig `koanf:"preview" toml:"preview"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
}

// FontConfig selects the default font and the user font directory
type FontConfig struct {
	Default string `koanf:"default" toml:"default"`
	Dir     string `koanf:"dir" toml:"dir"`
}

// ListConfig controls --list-fonts
type ListConfig struct {
	Count int `koanf:"count" toml:"count"`
}

// PreviewConfig controls --preview
type PreviewConfig struct {
	Fonts []string `koanf:"fonts" toml:"fonts"`
	Count int      `koanf:"count" toml:"count"`
}

// OutputConfig controls the header written above rendered art
type OutputConfig struct {
	TimestampFormat string `koanf:"timestamp_format" toml:"timestamp_format"`
	Separator       string `koanf:"separator" toml:"separator"`
	SeparatorWidth  int    `koanf:"separator_width" toml:"separator_width"`
}
