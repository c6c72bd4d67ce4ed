package redis

import "fmt"

// Key prefix for all client preference data
const keyPrefix = "tttclient"

// prefsKey returns the Redis HASH holding one profile's preferences
func prefsKey(profile string) string {
	return fmt.Sprintf("%s:prefs:%s", keyPrefix, profile)
}
