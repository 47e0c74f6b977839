package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
)

// EnvConfigPath overrides the settings file lookup
const EnvConfigPath = "RELCHECK_CONFIG"

const (
	jiraSection   = "jira"
	gitlabSection = "gitlab"
)

// ErrNoSettings is returned when no settings file exists in any lookup location
var ErrNoSettings = errors.New("no settings file found")

// Config is the parsed settings file
type Config struct {
	Jira   JiraConfig
	GitLab GitLabConfig

	// Hosts holds per-host GitLab sections keyed by host name (e.g., "gitlab.example.com")
	Hosts map[string]GitLabConfig

	path string
}

// JiraConfig holds the [jira] section
type JiraConfig struct {
	Login string
	// Password is already decoded from the base64 form stored on disk
	Password string
	Server   string
}

// GitLabConfig holds a GitLab section, either [gitlab] or a per-host one
type GitLabConfig struct {
	URL          string
	PrivateToken string
}

// section is the on-disk shape shared by all sections; unused keys stay empty
type section struct {
	Login        string `toml:"login"`
	Password     string `toml:"password"`
	Server       string `toml:"server"`
	URL          string `toml:"url"`
	PrivateToken string `toml:"private_token"`
}

// candidatePaths lists settings locations in lookup order
func candidatePaths() []string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return []string{path}
	}

	paths := []string{"settings.toml", "settings.ini"}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "relcheck", "settings.toml"))
	}
	return paths
}

// Load reads the first settings file found in the lookup locations
func Load() (*Config, error) {
	paths := candidatePaths()

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		return LoadFile(path)
	}

	return nil, fmt.Errorf("%w (looked in %s)", ErrNoSettings, strings.Join(paths, ", "))
}

// LoadFile reads a settings file. Files ending in .ini are parsed as INI,
// everything else as TOML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sections map[string]section
	if strings.EqualFold(filepath.Ext(path), ".ini") {
		sections, err = parseINI(data)
	} else {
		sections, err = parseTOML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg, err := fromSections(sections)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

func parseTOML(data []byte) (map[string]section, error) {
	sections := make(map[string]section)
	if err := toml.Unmarshal(data, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func parseINI(data []byte) (map[string]section, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	sections := make(map[string]section)
	for _, sec := range file.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		// KeysHash holds only the section's own keys. MapTo would also read
		// from dotted parents, so [gitlab.host] would inherit [gitlab] values.
		keys := sec.KeysHash()
		sections[sec.Name()] = section{
			Login:        keys["login"],
			Password:     keys["password"],
			Server:       keys["server"],
			URL:          keys["url"],
			PrivateToken: keys["private_token"],
		}
	}
	return sections, nil
}

func fromSections(sections map[string]section) (*Config, error) {
	jira, ok := sections[jiraSection]
	if !ok {
		return nil, fmt.Errorf("missing [%s] section", jiraSection)
	}
	if jira.Server == "" {
		return nil, fmt.Errorf("[%s] server is required", jiraSection)
	}
	if jira.Login == "" {
		return nil, fmt.Errorf("[%s] login is required", jiraSection)
	}

	password, err := base64.StdEncoding.DecodeString(strings.TrimSpace(jira.Password))
	if err != nil {
		return nil, fmt.Errorf("[%s] password is not valid base64: %w", jiraSection, err)
	}

	cfg := &Config{
		Jira: JiraConfig{
			Login:    jira.Login,
			Password: string(password),
			Server:   jira.Server,
		},
		Hosts: make(map[string]GitLabConfig),
	}

	for name, s := range sections {
		switch name {
		case jiraSection:
		case gitlabSection:
			cfg.GitLab = GitLabConfig{URL: s.URL, PrivateToken: s.PrivateToken}
		default:
			cfg.Hosts[name] = GitLabConfig{URL: s.URL, PrivateToken: s.PrivateToken}
		}
	}

	return cfg, nil
}

// Path returns the file the configuration was read from
func (c *Config) Path() string {
	return c.path
}

// GitLabFor returns the GitLab section for a host, falling back to [gitlab]
func (c *Config) GitLabFor(host string) (GitLabConfig, error) {
	name := gitlabSection
	gl := c.GitLab
	if hostCfg, ok := c.Hosts[host]; ok {
		name = host
		gl = hostCfg
	}

	if gl.URL == "" {
		return GitLabConfig{}, fmt.Errorf("[%s] url is required", name)
	}
	if gl.PrivateToken == "" {
		return GitLabConfig{}, fmt.Errorf("[%s] private_token is required", name)
	}
	return gl, nil
}
