package config

import (
	"time"

	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// APIBaseURL is the root of the Met collection API.
	APIBaseURL string
	// APIBackoff is the fixed wait between retries of a failed request.
	APIBackoff time.Duration
	// APIMaxRetries caps retry attempts per request; 0 retries forever.
	APIMaxRetries int
	// NationalitiesCSV is the path to the nationality reference list.
	NationalitiesCSV string
	// ImagesDir is where downloaded artwork images are saved.
	ImagesDir string
	// PreviewWidth is the bounding width for generated image previews.
	PreviewWidth int
)

// SetDefaults registers the default configuration values with viper.
func SetDefaults() {
	viper.SetDefault("api.baseurl", "https://collectionapi.metmuseum.org/public/collection/v1")
	viper.SetDefault("api.backoff", "1200ms")
	viper.SetDefault("api.maxretries", 0)
	viper.SetDefault("nationalities.csvfile", "./nacionalidades.csv")
	viper.SetDefault("images.dir", "./images")
	viper.SetDefault("images.previewwidth", 600)

	viper.SetDefault("datasette.enabled", true)
	viper.SetDefault("datasette.dbfile", "./metroart.db")
}

// InitConfig fills the globals from viper. SetDefaults must have been
// registered first (cmd.Execute does both, in that order).
func InitConfig() {
	APIBaseURL = viper.GetString("api.baseurl")
	APIBackoff = viper.GetDuration("api.backoff")
	APIMaxRetries = viper.GetInt("api.maxretries")
	NationalitiesCSV = viper.GetString("nationalities.csvfile")
	ImagesDir = viper.GetString("images.dir")
	PreviewWidth = viper.GetInt("images.previewwidth")
}
