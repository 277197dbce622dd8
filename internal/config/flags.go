package config

import "flag"

// Flags holds the command-line overrides shared by the converter commands.
type Flags struct {
	Config        string
	Debug         bool
	CocosPath     string
	CreatorAssets string
	JSONPath      string
	Format        string
}

// Register adds the config flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.CocosPath, "cocospath", "", "Prefix for asset paths in the output (e.g. creator/)")
	fs.StringVar(&f.CreatorAssets, "creatorassets", "", "Creator built-in assets directory")
	fs.StringVar(&f.JSONPath, "jsonpath", "", "Output directory")
	fs.StringVar(&f.Format, "format", "", "Output format: json or code")
}

// ParseFlags registers the config flags on fs and parses args.
func ParseFlags(fs *flag.FlagSet, args []string) (*Flags, error) {
	f := &Flags{}
	f.Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.Config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.CocosPath != "" {
		cfg.Paths.AssetPath = f.CocosPath
	}
	if f.CreatorAssets != "" {
		cfg.Paths.CreatorAssets = f.CreatorAssets
	}
	if f.JSONPath != "" {
		cfg.Paths.OutputDir = f.JSONPath
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
}
