package config

import "os"

// Config carries everything the server and the summary bridge need. It is
// loaded once at startup and passed explicitly; nothing in the engine reads
// the environment after this point.
type Config struct {
	Port                 string
	SummaryBaseURL       string
	SummaryInternalToken string
	SummaryMappingFile   string
	AdminUsername        string
	AdminPassword        string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		Port:                 port,
		SummaryBaseURL:       os.Getenv("SUMMARY_BASE_URL"),
		SummaryInternalToken: os.Getenv("SUMMARY_INTERNAL_TOKEN"),
		SummaryMappingFile:   os.Getenv("SUMMARY_MAPPING_FILE"),
		AdminUsername:        os.Getenv("ADMIN_USERNAME"),
		AdminPassword:        os.Getenv("ADMIN_PASSWORD"),
	}
}
