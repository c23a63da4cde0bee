// Package campaign loads the campaign figures shown on the board and keeps
// them fresh while the board runs.
package campaign

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTitle is shown when the campaign file has no title.
const DefaultTitle = "មូលនិធិ១ពាន់កាបូបនៃស្នាមញញឹម"

// DefaultGoal is used when the campaign file sets no goal.
const DefaultGoal = 5000

// ErrInvalid is returned for campaign files with impossible figures.
var ErrInvalid = errors.New("invalid campaign")

// Campaign holds the figures of a donation campaign. Field names follow the
// campaign API so JSON exports can be used unchanged.
type Campaign struct {
	Title         string   `yaml:"title" json:"title"`
	Subtitle      string   `yaml:"subtitle" json:"subtitle"`
	CurrentBags   int      `yaml:"current_bags" json:"current_bags"`
	Goal          int      `yaml:"goal" json:"goal"`
	Milestone     int      `yaml:"milestone,omitempty" json:"milestone,omitempty"`
	DonationItems []string `yaml:"donation_items" json:"donation_items"`
	LocationURL   string   `yaml:"location_url,omitempty" json:"location_url,omitempty"`
	QRURL         string   `yaml:"qr_url,omitempty" json:"qr_url,omitempty"`
	SchoolName    string   `yaml:"school_name,omitempty" json:"school_name,omitempty"`
	LastUpdated   string   `yaml:"last_updated,omitempty" json:"last_updated,omitempty"`
}

// Default returns the campaign shown before any file was read.
func Default() Campaign {
	return Campaign{Goal: DefaultGoal}
}

// Load reads a campaign from a YAML or JSON file. A zero goal becomes
// DefaultGoal.
func Load(path string) (Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to read campaign: %w", err)
	}
	return Parse(data)
}

// Parse decodes a campaign from YAML or JSON.
func Parse(data []byte) (Campaign, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Campaign{}, fmt.Errorf("failed to parse campaign: %w", err)
	}
	if c.Goal == 0 {
		c.Goal = DefaultGoal
	}
	if err := c.Validate(); err != nil {
		return Campaign{}, err
	}
	return c, nil
}

// Validate checks the figures.
func (c Campaign) Validate() error {
	if c.CurrentBags < 0 {
		return fmt.Errorf("%w: current_bags %d is negative", ErrInvalid, c.CurrentBags)
	}
	if c.Goal < 0 {
		return fmt.Errorf("%w: goal %d is negative", ErrInvalid, c.Goal)
	}
	if c.Milestone < 0 {
		return fmt.Errorf("%w: milestone %d is negative", ErrInvalid, c.Milestone)
	}
	return nil
}

// Updated returns the parsed last update time.
func (c Campaign) Updated() (time.Time, bool) {
	if c.LastUpdated == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateTime, time.DateOnly} {
		if t, err := time.Parse(layout, c.LastUpdated); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var titleRuns = regexp.MustCompile(`\p{N}+|[^\p{N}]+`)

// SplitTitle splits title around its first run of digits (in any script) so
// the number can be emphasized. Without digits the whole title is the
// prefix. An empty title uses DefaultTitle.
func SplitTitle(title string) (prefix, numeral, rest string) {
	if title == "" {
		title = DefaultTitle
	}
	parts := titleRuns.FindAllString(title, -1)
	for i, part := range parts {
		if isNumeral(part) {
			prefix = strings.TrimSpace(strings.Join(parts[:i], ""))
			rest = strings.TrimSpace(strings.Join(parts[i+1:], ""))
			return prefix, part, rest
		}
	}
	return title, "", ""
}

var numeralRun = regexp.MustCompile(`^\p{N}+$`)

func isNumeral(s string) bool {
	return numeralRun.MatchString(s)
}
