package myconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := Default()

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Error(t, cfg.Validate())
	})

	t.Run("Yaml file", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "shopclient.yaml")
		err := os.WriteFile(path, []byte(`
port: "9090"
requestTimeout: 3s
storefront:
  shopDomain: graphql.myshopify.com
  accessToken: dd4d4dc146542ba7763305d71d1b3d38
  apiVersion: "2023-10"
`), 0o600)
		assert.NoError(t, err)

		// when
		cfg, err := Load(path)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, "https://graphql.myshopify.com/api/2023-10/graphql.json", cfg.Storefront.GraphQLEndpoint())
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("Invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("port: [8080"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("Environment wins", func(t *testing.T) {
		// given
		cfg := Default()
		cfg.Port = "9090"
		env := map[string]string{
			"PORT":                     "8888",
			"SHOPIFY_SHOP_DOMAIN":      "evas-shop.myshopify.com",
			"SHOPIFY_STOREFRONT_TOKEN": "abc123",
			"SHOPIFY_API_VERSION":      "",
		}

		// when
		cfg.applyEnvironment(func(name string) (string, bool) {
			value, found := env[name]
			return value, found
		})

		// then
		assert.Equal(t, "8888", cfg.Port)
		assert.Equal(t, "https://evas-shop.myshopify.com/api/2024-01/graphql.json", cfg.Storefront.GraphQLEndpoint())
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Explicit endpoint", func(t *testing.T) {
		s := Storefront{Endpoint: "http://localhost:9999/graphql", AccessToken: "abc"}
		assert.Equal(t, "http://localhost:9999/graphql", s.GraphQLEndpoint())
		assert.NoError(t, Config{Storefront: s}.Validate())
	})
}
