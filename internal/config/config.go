package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file:tunmzytech.db?_fk=1"`

	Pi      Pi      `envPrefix:"PI_"`
	Session Session `envPrefix:"SESSION_"`
}

type Pi struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.minepi.com/v2"`
	APIKey     string `env:"API_KEY"`

	// When the Pi API rejects or is unreachable during approve/complete,
	// fall back to a locally simulated success instead of failing the
	// request. Off means those requests fail with 502.
	AllowDegraded bool `env:"ALLOW_DEGRADED" envDefault:"true"`
}

type Session struct {
	Secret string        `env:"SECRET" envDefault:"dev-session-secret"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

func (e Environment) IsProduction() bool {
	return e.Name == "production"
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8001"`
}
