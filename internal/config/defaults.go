package config

// Default returns the configuration used when no config file is given.
// The width clamp mirrors the spreadsheet output of earlier versions of
// this tool.
func Default() *Config {
	return &Config{
		Selector: SelectorConfig{},
		Metadata: MetadataConfig{Enabled: true},
		Output: OutputConfig{
			Format:       "xlsx",
			SheetName:    "Transactions",
			FreezeHeader: true,
			MinColWidth:  10,
			MaxColWidth:  45,
		},
		Workers: 1,
	}
}
