package utils

import "carhive/config"

// IsProduction reports whether the app runs with ENV=production.
func IsProduction() bool {
	return config.GetEnv() == "production"
}
