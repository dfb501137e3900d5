package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresConfig holds the connection settings read from the environment.
type PostgresConfig struct {
	Host       string
	Port       uint
	Name       string
	Username   string
	Password   string
	SecretID   string
	SSLDisable bool
}

// Credentials is the JSON shape of the database secret in Secrets Manager.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewPostgresConfigFromEnv reads DB_HOST, DB_PORT (default 5432), DB_NAME,
// DB_USERNAME, DB_PASSWORD, DB_SECRET_ID and DB_SSL_MODE_DISABLE.
func NewPostgresConfigFromEnv() PostgresConfig {
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432
	}
	return PostgresConfig{
		Host:       getenvDefault("DB_HOST", "localhost"),
		Port:       uint(port),
		Name:       getenvDefault("DB_NAME", "apolices"),
		Username:   os.Getenv("DB_USERNAME"),
		Password:   os.Getenv("DB_PASSWORD"),
		SecretID:   os.Getenv("DB_SECRET_ID"),
		SSLDisable: os.Getenv("DB_SSL_MODE_DISABLE") == "true",
	}
}

// DSN renders the libpq keyword/value connection string.
func (c PostgresConfig) DSN() string {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d", c.Host, c.Username, c.Password, c.Name, c.Port)
	if c.SSLDisable {
		dsn += " sslmode=disable"
	}
	return dsn
}

// ConnectPostgres opens a gorm connection. Credentials come from DB_USERNAME and
// DB_PASSWORD when both are set, otherwise from the DB_SECRET_ID secret.
func ConnectPostgres(ctx context.Context) (*gorm.DB, error) {
	cfg := NewPostgresConfigFromEnv()
	if cfg.Username == "" || cfg.Password == "" {
		creds, err := retrieveCredentials(ctx, cfg.SecretID)
		if err != nil {
			return nil, err
		}
		cfg.Username, cfg.Password = creds.Username, creds.Password
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[database][postgres] connected host=%s db=%s", cfg.Host, cfg.Name)
	return db, nil
}

func retrieveCredentials(ctx context.Context, secretID string) (Credentials, error) {
	if secretID == "" {
		return Credentials{}, fmt.Errorf("database credentials missing: set DB_USERNAME/DB_PASSWORD or DB_SECRET_ID")
	}

	awsCfg, err := NewAWSConfigFromEnv(ctx, secretsmanager.ServiceID, os.Getenv("SECRETS_MANAGER_ENDPOINT"))
	if err != nil {
		return Credentials{}, err
	}
	out, err := secretsmanager.NewFromConfig(awsCfg).GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("reading secret %s: %w", secretID, err)
	}
	return parseCredentials(aws.ToString(out.SecretString))
}

func parseCredentials(secret string) (Credentials, error) {
	var c Credentials
	if err := json.Unmarshal([]byte(secret), &c); err != nil {
		return Credentials{}, fmt.Errorf("decoding database secret: %w", err)
	}
	if c.Username == "" || c.Password == "" {
		return Credentials{}, fmt.Errorf("database secret is missing username or password")
	}
	return c, nil
}
