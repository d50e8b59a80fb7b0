package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// RefPath is the path to the reference roster loaded at startup.
	RefPath string `mapstructure:"ref_path" default:"reference.csv"`
}
