package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	DSN   string        `env:"DSN,expand" envDefault:"data.sqlite"`
	Cache DatabaseCache `envPrefix:"CACHE_"`
}

type DatabaseCache struct {
	Users CacheOptions `envPrefix:"USERS_"`
}

type CacheOptions struct {
	Enabled bool          `env:"ENABLED,expand" envDefault:"true"`
	Size    int           `env:"SIZE,expand" envDefault:"128"`
	TTL     time.Duration `env:"TTL,expand" envDefault:"1m"`
}
