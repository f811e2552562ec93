package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/auth"
	"github.com/vidinfo-cli/vidinfo/catalog"
	"github.com/vidinfo-cli/vidinfo/display"
	"github.com/vidinfo-cli/vidinfo/key"
	"github.com/vidinfo-cli/vidinfo/network"
	"golang.org/x/text/language"
)

// newClient builds a catalog client from configuration, resolving the key from config or the keyring.
func newClient() (*catalog.Client, error) {
	apiKey, _, err := auth.Resolve()
	if err != nil {
		return nil, err
	}

	return catalog.New(catalog.Options{
		HTTPClient: network.New(time.Duration(viper.GetInt(key.APITimeout)) * time.Second),
		Endpoint:   viper.GetString(key.APIEndpoint),
		Key:        apiKey,
		Parts:      viper.GetStringSlice(key.APIParts),
	}), nil
}

// newProjector builds a projector from the format settings.
func newProjector() (display.Projector, error) {
	locale, err := language.Parse(viper.GetString(key.FormatLocale))
	if err != nil {
		return display.Projector{}, fmt.Errorf("invalid %s: %w", key.FormatLocale, err)
	}

	location, err := time.LoadLocation(viper.GetString(key.FormatTimezone))
	if err != nil {
		return display.Projector{}, fmt.Errorf("invalid %s: %w", key.FormatTimezone, err)
	}

	return display.New(display.Options{
		Locale:     locale,
		Location:   location,
		TimeLayout: viper.GetString(key.FormatTimeLayout),
	}), nil
}
