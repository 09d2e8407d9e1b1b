package jwt

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"gopkg.in/yaml.v3"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/xjwt", "jwt")

// Config provides Decoder configuration
type Config struct {
	// MaxTokenSize specifies the maximum length of a token to decode,
	// longer tokens are decoded as empty. Zero means no limit.
	MaxTokenSize int `json:"max_token_size" yaml:"max_token_size"`
	// URLAlphabetOnly rejects segments encoded with the standard base64 alphabet
	URLAlphabetOnly bool `json:"url_alphabet_only" yaml:"url_alphabet_only"`
}

// LoadConfig returns configuration loaded from a file
func LoadConfig(file string) (*Config, error) {
	if file == "" {
		return &Config{}, nil
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithMessage(err, "unable to read file")
	}

	var config Config
	if strings.HasSuffix(file, ".json") {
		err = json.Unmarshal(raw, &config)
		if err != nil {
			return nil, errors.WithMessagef(err, "unable to unmarshal JSON: %q", file)
		}
	} else {
		err = yaml.Unmarshal(raw, &config)
		if err != nil {
			return nil, errors.WithMessagef(err, "unable to unmarshal YAML: %q", file)
		}
	}

	if config.MaxTokenSize < 0 {
		return nil, errors.Errorf("invalid max_token_size: %d", config.MaxTokenSize)
	}
	return &config, nil
}

// Load returns new Decoder with configuration loaded from a file
func Load(cfgfile string) (*Decoder, error) {
	cfg, err := LoadConfig(cfgfile)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewDecoder(cfg), nil
}
