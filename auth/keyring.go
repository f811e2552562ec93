// Package auth stores the catalog API key in the system keyring.
package auth

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/constant"
	"github.com/vidinfo-cli/vidinfo/key"
	"github.com/zalando/go-keyring"
)

const user = "api-key"

// ErrNoKey is returned by Resolve when neither configuration nor the keyring holds a key.
var ErrNoKey = errors.New("no api key configured: run `" + constant.Vidinfo + " auth set` or set " + strings.ToUpper(constant.Vidinfo) + "_API_KEY")

// Source names where a resolved key came from.
type Source string

const (
	SourceConfig  Source = "config"
	SourceKeyring Source = "keyring"
)

// SetKey persists key to the system keyring.
func SetKey(apiKey string) error {
	return keyring.Set(constant.Vidinfo, user, apiKey)
}

// GetKey reads the key from the system keyring.
func GetKey() (string, error) {
	return keyring.Get(constant.Vidinfo, user)
}

// DeleteKey removes the key from the system keyring.
func DeleteKey() error {
	return keyring.Delete(constant.Vidinfo, user)
}

// Resolve returns the api key, preferring configuration (file, env or .env) over the keyring.
func Resolve() (string, Source, error) {
	if apiKey := strings.TrimSpace(viper.GetString(key.APIKey)); apiKey != "" {
		return apiKey, SourceConfig, nil
	}

	apiKey, err := GetKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", "", ErrNoKey
		}
		return "", "", err
	}

	return apiKey, SourceKeyring, nil
}
