package pocketrest

import "errors"

var (
	ErrMissingBaseURL = errors.New("pocketrest.missing_base_url")
	ErrLoadEnvFile    = errors.New("pocketrest.load_env_file")
	ErrParseConfig    = errors.New("pocketrest.parse_config")
)
