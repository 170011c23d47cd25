package myconfig

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort       = "8080"
	defaultAPIVersion = "2024-01"
	defaultTimeout    = 10 * time.Second
)

type Config struct {
	Port               string        `yaml:"port"`
	GoogleCloudProject string        `yaml:"googleCloudProject"`
	Storefront         Storefront    `yaml:"storefront"`
	RequestTimeout     time.Duration `yaml:"requestTimeout"`
}

type Storefront struct {
	ShopDomain  string `yaml:"shopDomain"`
	AccessToken string `yaml:"accessToken"`
	APIVersion  string `yaml:"apiVersion"`
	// Endpoint overrides the url derived from ShopDomain and APIVersion.
	Endpoint string `yaml:"endpoint"`
}

func Default() Config {
	return Config{
		Port:           defaultPort,
		RequestTimeout: defaultTimeout,
		Storefront: Storefront{
			APIVersion: defaultAPIVersion,
		},
	}
}

// Load starts from the defaults, applies the yaml file at path (when not empty) and finally
// the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("error reading config file %s: %s", path, err)
		}

		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("error parsing config file %s: %s", path, err)
		}
	}

	cfg.applyEnvironment(os.LookupEnv)

	return cfg, nil
}

func (c *Config) applyEnvironment(lookup func(string) (string, bool)) {
	overrides := map[string]*string{
		"PORT":                     &c.Port,
		"GOOGLE_CLOUD_PROJECT":     &c.GoogleCloudProject,
		"SHOPIFY_SHOP_DOMAIN":      &c.Storefront.ShopDomain,
		"SHOPIFY_STOREFRONT_TOKEN": &c.Storefront.AccessToken,
		"SHOPIFY_API_VERSION":      &c.Storefront.APIVersion,
		"SHOPIFY_GRAPHQL_ENDPOINT": &c.Storefront.Endpoint,
	}
	for name, field := range overrides {
		value, found := lookup(name)
		if found && value != "" {
			*field = value
		}
	}
}

func (c Config) Validate() error {
	if c.Storefront.Endpoint == "" && strings.TrimSpace(c.Storefront.ShopDomain) == "" {
		return fmt.Errorf("missing storefront shop domain (SHOPIFY_SHOP_DOMAIN)")
	}
	if strings.TrimSpace(c.Storefront.AccessToken) == "" {
		return fmt.Errorf("missing storefront access token (SHOPIFY_STOREFRONT_TOKEN)")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid request timeout %s", c.RequestTimeout)
	}
	return nil
}

func (s Storefront) GraphQLEndpoint() string {
	if s.Endpoint != "" {
		return s.Endpoint
	}
	return fmt.Sprintf("https://%s/api/%s/graphql.json", strings.TrimSuffix(s.ShopDomain, "/"), s.APIVersion)
}
