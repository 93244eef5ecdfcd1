package config

type (
	// NotifierConfig represents the configuration for the notification publisher
	NotifierConfig struct {
		Type  string      `yaml:"type"` // noop or redis
		Redis RedisConfig `yaml:"redis"`
	}

	// RedisConfig represents the configuration for Redis-based notifier
	RedisConfig struct {
		ClusterType string `yaml:"cluster_type"` // single, sentinel or cluster
		// Addr lists one or more addresses separated by ',' or ';'
		Addr       string `yaml:"addr"`
		MasterName string `yaml:"master_name"`
		Username   string `yaml:"username"`
		Password   string `yaml:"password"`
		DB         int    `yaml:"db"`
		Stream     string `yaml:"stream"`
		MaxLen     int64  `yaml:"max_len"`
	}
)
