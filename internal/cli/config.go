package cli

import (
	"os"

	"github.com/mcoot/tictactoe-client/internal/factory"
	"github.com/mcoot/tictactoe-client/internal/gameapi"
	"github.com/mcoot/tictactoe-client/internal/prefs/file"
	redisprefs "github.com/mcoot/tictactoe-client/internal/prefs/redis"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Prefs     string
	PrefsFile string
	RedisURL  string
	Profile   string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("TTT_SERVER", gameapi.DefaultBaseURL),
		Prefs:     getEnvOrDefault("TTT_PREFS", factory.StoreTypeFile),
		PrefsFile: getEnvOrDefault("TTT_PREFS_FILE", file.DefaultPath()),
		RedisURL:  getEnvOrDefault("TTT_REDIS_URL", redisprefs.DefaultConfig().URL),
		Profile:   getEnvOrDefault("TTT_PROFILE", redisprefs.DefaultConfig().Profile),
		Output:    "text",
		Verbose:   false,
	}
}

// FactoryConfig translates CLI settings into the application factory's config
func (c *Config) FactoryConfig() factory.Config {
	fc := factory.Config{
		ServerURL: c.ServerURL,
		StoreType: c.Prefs,
		PrefsFile: c.PrefsFile,
	}
	if c.Prefs == factory.StoreTypeRedis {
		redisCfg := redisprefs.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.Profile = c.Profile
		fc.RedisConfig = &redisCfg
	}
	return fc
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
