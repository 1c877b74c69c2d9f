package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Options struct {
	runAddr       string
	logLevel      string
	dataSource    string
	dataBaseDSN   string
	pageTemplate  string
	migrationsDir string
	fetchTimeout  time.Duration
}

func NewOptions() *Options {
	return new(Options)
}

// ParseFlags handles command line arguments
// and stores their values in the corresponding variables.
func (o *Options) ParseFlags() {
	o.Parse(flag.CommandLine, os.Args[1:])
}

// Parse registers the options on fs and parses args into them. Callers may
// register extra flags on fs beforehand.
func (o *Options) Parse(fs *flag.FlagSet, args []string) error {
	// Load environment variables from the .env file
	loadEnvFile()

	// Override variable values with values from command line flags
	fs.StringVar(&o.runAddr, "a", getEnvOrDefault("RUN_ADDRESS", ":8080"), "address and port to run server")
	fs.StringVar(&o.logLevel, "l", getEnvOrDefault("LOG_LEVEL", "info"), "log level")
	fs.StringVar(&o.dataSource, "s", getEnvOrDefault("DATA_SOURCE", "data.json"), "catalog location, a file path or an http(s) URL")
	fs.StringVar(&o.dataBaseDSN, "d", getEnvOrDefault("DATABASE_URI", ""), "database connection string, takes precedence over -s")
	fs.StringVar(&o.pageTemplate, "p", getEnvOrDefault("PAGE_TEMPLATE", ""), "page shell to render into, embedded page if empty")
	fs.StringVar(&o.migrationsDir, "m", getEnvOrDefault("MIGRATIONS_DIR", "migrations"), "database migrations directory")
	fs.DurationVar(&o.fetchTimeout, "t", getEnvDurationOrDefault("FETCH_TIMEOUT", 0), "catalog load timeout, 0 waits indefinitely")

	// parse the arguments passed to the server into registered variables
	return fs.Parse(args)
}

func (o *Options) RunAddr() string {
	return o.runAddr
}

func (o *Options) LogLevel() string {
	return o.logLevel
}

func (o *Options) DataSource() string {
	return o.dataSource
}

func (o *Options) DataBaseDSN() string {
	return o.dataBaseDSN
}

func (o *Options) PageTemplate() string {
	return o.pageTemplate
}

func (o *Options) MigrationsDir() string {
	return o.migrationsDir
}

func (o *Options) FetchTimeout() time.Duration {
	return o.fetchTimeout
}

// getEnvOrDefault reads an environment variable or returns a default value if the variable is not set or is empty.
func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := getEnvOrDefault(key, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// loadEnvFile loads environment variables from a .env file
func loadEnvFile() {
	// Determine the path to the .env file relative to the current working directory
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	envPath := filepath.Join(cwd, ".env")

	// Load environment variables from the .env file
	err = godotenv.Load(envPath)
	if err != nil {
		log.Printf("No .env file found at %s, proceeding without it", envPath)
	} else {
		log.Printf(".env file loaded from %s", envPath)
	}
}
