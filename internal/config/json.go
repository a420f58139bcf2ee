package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted by
// the JSON config file.
type StructuredJSONConfig struct {
	Repository struct {
		Owner          string   `json:"owner"`
		Name           string   `json:"name"`
		Token          string   `json:"token"`
		APIURL         string   `json:"api_url"`
		RawURL         string   `json:"raw_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"repository,omitempty"`

	Server struct {
		Port           string   `json:"port"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Repository: Repository{
			Owner:          jsonCfg.Repository.Owner,
			Name:           jsonCfg.Repository.Name,
			Token:          jsonCfg.Repository.Token,
			APIURL:         jsonCfg.Repository.APIURL,
			RawURL:         jsonCfg.Repository.RawURL,
			RequestTimeout: time.Duration(jsonCfg.Repository.RequestTimeout),
		},
		Server: Server{
			Port:           jsonCfg.Server.Port,
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
