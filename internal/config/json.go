package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly types.
// Durations are accepted both as strings ("15m") and as nanosecond numbers.
type StructuredJSONConfig struct {
	Auth struct {
		SignKeys          map[string]string `json:"sign_keys"`
		APIAccessKid      string            `json:"api_access_kid"`
		APIAccessDuration Duration          `json:"api_access_duration"`
		RefreshKid        string            `json:"refresh_kid"`
		RefreshDuration   Duration          `json:"refresh_duration"`
		ResetKid          string            `json:"reset_kid"`
		ResetDuration     Duration          `json:"reset_duration"`
		TokenIssuer       string            `json:"token_issuer"`
		BCryptCost        int               `json:"bcrypt_cost"`
	} `json:"auth,omitempty"`

	Mail struct {
		RelayURL       string   `json:"relay_url"`
		APIKey         string   `json:"api_key"`
		FromName       string   `json:"from_name"`
		FromAddress    string   `json:"from_address"`
		ResetBaseURL   string   `json:"reset_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"mail,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
		Auth: Auth{
			SignKeys:          jsonCfg.Auth.SignKeys,
			APIAccessKid:      jsonCfg.Auth.APIAccessKid,
			APIAccessDuration: time.Duration(jsonCfg.Auth.APIAccessDuration),
			RefreshKid:        jsonCfg.Auth.RefreshKid,
			RefreshDuration:   time.Duration(jsonCfg.Auth.RefreshDuration),
			ResetKid:          jsonCfg.Auth.ResetKid,
			ResetDuration:     time.Duration(jsonCfg.Auth.ResetDuration),
			TokenIssuer:       jsonCfg.Auth.TokenIssuer,
			BCryptCost:        jsonCfg.Auth.BCryptCost,
		},
		Mail: Mail{
			RelayURL:       jsonCfg.Mail.RelayURL,
			APIKey:         jsonCfg.Mail.APIKey,
			FromName:       jsonCfg.Mail.FromName,
			FromAddress:    jsonCfg.Mail.FromAddress,
			ResetBaseURL:   jsonCfg.Mail.ResetBaseURL,
			RequestTimeout: time.Duration(jsonCfg.Mail.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
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
