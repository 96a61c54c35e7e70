package config

import "os"

func IsDebug() bool {
	return os.Getenv("ROSTER_DEBUG") == "1"
}
