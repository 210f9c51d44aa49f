package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Port string `envconfig:"PORT" default:"5000"`

	// Mongo
	MongoURI string `envconfig:"MONGO_URI"`
	DBUser   string `envconfig:"DB_USER"`
	DBPass   string `envconfig:"DB_PASS"`
	DBHost   string `envconfig:"DB_HOST" default:"localhost:27017"`
	DBName   string `envconfig:"DB_NAME" default:"PawPalDB"`

	// JWT
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"1h"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// MinIO, image upload is disabled when the endpoint is empty
	MinioEndpoint  string `envconfig:"MINIO_ENDPOINT"`
	MinioAccessKey string `envconfig:"MINIO_ACCESS_KEY" default:"minioadmin"`
	MinioSecretKey string `envconfig:"MINIO_SECRET_KEY" default:"minioadmin"`
	MinioBucket    string `envconfig:"MINIO_BUCKET" default:"pawpal-images"`
	MinioUseSSL    bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (App, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return App{}, fmt.Errorf("load config: %w", err)
	}
	if c.JWTSecret == "" {
		return App{}, errors.New("load config: JWT_SECRET is empty")
	}
	return c, nil
}

// MongoConnectionURI returns MONGO_URI when set, otherwise builds one from
// the DB_* credentials. Hosts without a port are treated as SRV records.
func (c App) MongoConnectionURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}

	scheme := "mongodb"
	if _, _, err := net.SplitHostPort(c.DBHost); err != nil {
		scheme = "mongodb+srv"
	}

	u := url.URL{Scheme: scheme, Host: c.DBHost, Path: "/"}
	if c.DBUser != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPass)
	}
	if scheme == "mongodb+srv" {
		u.RawQuery = "retryWrites=true&w=majority"
	}
	return u.String()
}

// AllowOrigins joins the configured origins the way the CORS middleware expects.
func (c App) AllowOrigins() string {
	return strings.Join(c.CORSOrigins, ",")
}

// ImagesEnabled reports whether object storage is configured.
func (c App) ImagesEnabled() bool {
	return c.MinioEndpoint != ""
}
