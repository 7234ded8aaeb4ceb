package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	SMTPHost   string
	SMTPPort   int
	EmailUser  string
	EmailPass  string
	AdminEmail string
	Port       string
}

func Load() Config {
	return Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBUser:     getenv("DB_USER", "root"),
		DBPass:     os.Getenv("DB_PASS"),
		DBName:     getenv("DB_NAME", "homestay"),
		SMTPHost:   getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:   getenvInt("SMTP_PORT", 587),
		EmailUser:  os.Getenv("EMAIL_USER"),
		EmailPass:  os.Getenv("EMAIL_PASS"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
		Port:       getenv("PORT", "3000"),
	}
}

// DSN builds the MySQL connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil && n > 0 {
		return n
	}
	return def
}
