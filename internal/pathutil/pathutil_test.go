package pathutil

import "testing"

func TestApplyEnvironmentOverrides(t *testing.T) {
	testCases := []struct {
		Name   string
		Env    string
		Config string
		DB     string
	}{
		{Name: "no environment", Env: "", Config: "config.yml", DB: "yogi.db"},
		{Name: "blank environment", Env: "  ", Config: "config.yml", DB: "yogi.db"},
		{Name: "dev environment", Env: "dev", Config: "config_dev.yml", DB: "yogi_dev.db"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			p := &Paths{
				configFileName: "config.yml",
				dbFileName:     "yogi.db",
			}

			p.applyEnvironmentOverrides(tc.Env)

			if p.configFileName != tc.Config {
				t.Errorf("expected config file: %s, but got: %s", tc.Config, p.configFileName)
			}

			if p.dbFileName != tc.DB {
				t.Errorf("expected db file: %s, but got: %s", tc.DB, p.dbFileName)
			}
		})
	}
}
