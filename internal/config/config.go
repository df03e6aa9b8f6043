package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataDir   string `yaml:"data_dir"`
		OutputCSV string `yaml:"output_csv"`
	} `yaml:"app"`

	Search struct {
		Keywords string `yaml:"keywords"`
		Location string `yaml:"location"`
	} `yaml:"search"`

	Browser struct {
		Headless           bool `yaml:"headless"`
		WaitTimeoutSeconds int  `yaml:"wait_timeout_seconds"`
		// MinDelayMillis is the pacing floor between navigations.
		MinDelayMillis       int `yaml:"min_delay_millis"`
		ScrollStepPixels     int `yaml:"scroll_step_pixels"`
		ScrollIntervalMillis int `yaml:"scroll_interval_millis"`
		ScrollMaxSteps       int `yaml:"scroll_max_steps"`
		ScrollMaxSeconds     int `yaml:"scroll_max_seconds"`
	} `yaml:"browser"`

	Email struct {
		Enabled          bool     `yaml:"enabled"`
		IMAPHost         string   `yaml:"imap_host"`
		IMAPPort         int      `yaml:"imap_port"`
		Username         string   `yaml:"username"`
		Mailbox          string   `yaml:"mailbox"`
		SearchSubjectAny []string `yaml:"search_subject_any"`
		MaxEmails        int      `yaml:"max_emails"`
	} `yaml:"email"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
