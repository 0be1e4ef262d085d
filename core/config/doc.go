// Package config provides environment-driven configuration loading with two
// complementary faces: a type-safe struct loader and a dynamic nested map.
//
// The struct loader parses environment variables into tagged struct fields
// using the caarlos0/env library, caches each configuration type after the
// first load, and automatically reads .env files on first use:
//
//	type ServerConfig struct {
//		Host string `env:"HTTP_HOST" envDefault:"localhost"`
//		Port int    `env:"HTTP_PORT" envDefault:"8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// The dynamic map builds a nested configuration tree from every environment
// variable whose name contains a double underscore. DATABASE__POOL__MAX=10
// becomes the path "database.pool.max" with the numeric value 10. Values are
// coerced: "true" and "false" become booleans, numeric strings without a
// leading zero become numbers, everything else stays a string:
//
//	cfg := config.BuildFromEnv()
//	max := cfg.Get("database.pool.max", 5)
//	url, err := cfg.GetRequired("database.url")
//
// Single-underscore variable names (PATH, HOME, HTTP_PORT) are considered
// process- or framework-level and are never folded into the map, with one
// deliberate exception: the conventional deployment variables PORT and HOST
// seed app.port and app.host with the same coercion, and an explicit
// APP__PORT or APP__HOST overrides them. Variables prefixed with VOILA_ are
// reserved for the toolkit's own module settings.
//
// Environment detection helpers round out the package: Env, IsProduction,
// IsDevelopment and ServiceName implement the smart defaults used by the
// other appkit modules, and Validate enforces the startup requirements for
// production deployments.
package config
