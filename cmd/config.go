package cmd

import "fmt"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Aggregator the outlet receives pushed orders from and reports
	// transitions back to.
	UpstreamBaseURL string
	UpstreamAPIKey  string

	// Railway information service for train schedules.
	TrainInfoBaseURL string

	JWTSecret string

	// The outlet this deployment serves. Every feed pull and every board
	// query is scoped to it.
	OutletID string

	OrderSyncSchedule      string
	DocumentExpirySchedule string
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
