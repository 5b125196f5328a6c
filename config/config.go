package config

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string

	JWTSecret string

	OcrAPIURL     string
	SuggestAPIURL string
	RenderAPIURL  string

	SendgridAPIKey         string
	CloudinaryUploadPreset string
	CloudinaryAPISecret    string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("ENV"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:          os.Getenv("DB_URI"),
		DatabaseName: os.Getenv("DB_NAME"),
		BaseURL:      os.Getenv("BASE_URL"),
		Port:         os.Getenv("PORT"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		OcrAPIURL:     os.Getenv("OCR_API_URL"),
		SuggestAPIURL: os.Getenv("SUGGEST_API_URL"),
		RenderAPIURL:  os.Getenv("RENDER_API_URL"),

		SendgridAPIKey:         os.Getenv("SENDGRID_API_KEY"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		CloudinaryAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
	}

}

// setLogger maps the ENV value to a zap logger config. Unknown values
// get the example logger so local runs always log.
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
	return
}
