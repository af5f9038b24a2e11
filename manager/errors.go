package manager

import "errors"

var (
	ErrLocationNotFound  = errors.New("location not found")
	ErrNoProviderFound   = errors.New("no provider found")
	ErrParsing           = errors.New("unexpected response")
	ErrSerialization     = errors.New("serialize provider")
	ErrFileWriting       = errors.New("write config file")
	ErrDirectoryCreation = errors.New("create config directory")
	ErrNoConfigPath      = errors.New("no config path provided")
	ErrNoCommand         = errors.New("no command provided")
	ErrNoAPIKey          = errors.New("no api key for provider")
	ErrUnknownProvider   = errors.New("unknown provider")
	ErrInvalidTime       = errors.New("invalid time")
)
