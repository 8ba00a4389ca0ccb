package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hlubek/stockseed/randsrc"
)

const envPrefix = "STOCKSEED"

type Config struct {
	ProductCount  int `mapstructure:"product_count"`
	SaleCount     int `mapstructure:"sale_count"`
	PurchaseCount int `mapstructure:"purchase_count"`

	SeedSampler int64 `mapstructure:"seed_sampler"`
	SeedNumeric int64 `mapstructure:"seed_numeric"`
	SeedFaker   int64 `mapstructure:"seed_faker"`

	Output      string `mapstructure:"output"`
	Profile     string `mapstructure:"profile"`
	AsOf        string `mapstructure:"as_of"`
	DatabaseURL string `mapstructure:"database_url"`

	Quiet     bool `mapstructure:"quiet"`
	NoSummary bool `mapstructure:"no_summary"`
}

func (c *Config) Seeds() randsrc.Seeds {
	return randsrc.Seeds{Sampler: c.SeedSampler, Numeric: c.SeedNumeric, Faker: c.SeedFaker}
}

// Clock returns the generation clock: the parsed as_of value, or now when unset.
func (c *Config) Clock(now func() time.Time) (time.Time, error) {
	if c.AsOf == "" {
		return now(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, c.AsOf); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid as_of %q, expected RFC 3339 or YYYY-MM-DD", c.AsOf)
}

func (c *Config) Validate() error {
	var errs []error
	if c.ProductCount < 0 {
		errs = append(errs, errors.New("product_count must not be negative"))
	}
	if c.SaleCount < 0 {
		errs = append(errs, errors.New("sale_count must not be negative"))
	}
	if c.PurchaseCount < 0 {
		errs = append(errs, errors.New("purchase_count must not be negative"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output must not be empty"))
	}
	if _, err := c.Clock(time.Now); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Flags registers the command-line options on fs.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "optional config file (yaml, toml, json or env)")
	fs.Int("product-count", 250, "number of products to generate")
	fs.Int("sale-count", 12000, "number of sales to generate")
	fs.Int("purchase-count", 3000, "number of purchases to generate")
	fs.Int64("seed-sampler", 42, "seed of the choice/weight sampler")
	fs.Int64("seed-numeric", 42, "seed of the numeric sampler")
	fs.Int64("seed-faker", 42, "seed of the text faker (0 picks a random seed)")
	fs.StringP("output", "o", "inserts_synthetic_data.sql", "output script path")
	fs.String("profile", "", "YAML generation profile (defaults to the embedded one)")
	fs.String("as-of", "", "generation clock, RFC 3339 or YYYY-MM-DD (defaults to now)")
	fs.String("database-url", "", "replay the script into this Postgres database after writing it")
	fs.BoolP("quiet", "q", false, "only print errors")
	fs.Bool("no-summary", false, "skip the summary report")
}

// Load resolves the configuration from flags, STOCKSEED_* environment
// variables, an optional config file and the flag defaults, in that order of
// precedence. fs must have been set up with Flags and parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		v.BindPFlag(keyOf(f.Name), f)
	})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func keyOf(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}
