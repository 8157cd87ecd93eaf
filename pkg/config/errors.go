package config

import "errors"

var (
	ErrParsingConfig = errors.New("config.parse_failed")
	ErrLoadingDotenv = errors.New("config.dotenv_failed")
	ErrNilPointer    = errors.New("config.nil_pointer")
)
