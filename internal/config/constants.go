package config

import "fmt"

const (
	ENV_PREFIX              = "RESEARCHFORGE"
	ENV_ENDPOINT            = "ENDPOINT"
	ENV_PROVIDER            = "PROVIDER"
	ENV_MODEL               = "MODEL"
	ENV_ENGINE              = "ENGINE"
	ENV_SANITIZE            = "SANITIZE"
	ENV_MESSAGE_TOKEN_LIMIT = "MESSAGE_TOKEN_LIMIT"
	ENV_LOG_LEVEL           = "LOG_LEVEL"
	ENV_LOG_FILE            = "LOG_FILE"
	ENV_CATEGORY            = "CATEGORY"
	ENV_MAX_RESULTS         = "MAX_RESULTS"
)

const (
	DEFAULT_ENDPOINT            = "http://localhost:8080"
	DEFAULT_PROVIDER            = "backend"
	DEFAULT_ENGINE              = "regex"
	DEFAULT_MESSAGE_TOKEN_LIMIT = 8_000
	DEFAULT_LOG_LEVEL           = "warn"
	DEFAULT_CATEGORY            = "all"
	DEFAULT_MAX_RESULTS         = 10
)

func GetEnvWithPrefix(env string) string {
	return fmt.Sprintf("%s_%s", ENV_PREFIX, env)
}
