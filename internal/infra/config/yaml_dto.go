package config

type YAMLWorkspace struct {
	Soonpage YAMLSettings `yaml:"soonpage"`
}

type YAMLSettings struct {
	AnalyticsID string `yaml:"analytics_id"`
	FooterOwner string `yaml:"footer_owner"`

	Source      string   `yaml:"source"`
	Domain      string   `yaml:"domain"`
	Domains     []string `yaml:"domains"`
	DomainsFile string   `yaml:"domains_file"`

	Paths YAMLPaths `yaml:"paths"`

	DisplayNames map[string]string `yaml:"display_names"`
}

type YAMLPaths struct {
	OutputDir string `yaml:"output_dir"`
	RunsDir   string `yaml:"runs_dir"`
}
