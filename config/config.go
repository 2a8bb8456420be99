package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type commerce struct {
	APIURL         string `mapstructure:"api_url"`
	ConsumerKey    string `mapstructure:"consumer_key"`
	ConsumerSecret string `mapstructure:"consumer_secret"`
}

// Live reports whether the live backend is fully configured: the
// endpoint URL and the credential pair must all be present. The
// decision is taken once at startup and never flips mid-session.
func (c commerce) Live() bool {
	return c.APIURL != "" && c.ConsumerKey != "" && c.ConsumerSecret != ""
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	CartEventsTopic    string   `mapstructure:"cart_events_topic"`
}

// Enabled reports whether cart-event telemetry is configured.
func (b broker) Enabled() bool {
	return len(b.SeedBrokers) > 0 && b.CartEventsTopic != ""
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Commerce       commerce   `mapstructure:"commerce"`
	Broker         broker     `mapstructure:"broker"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q

	Commerce:
	APIURL=%q
	ConsumerKey set=%v
	ConsumerSecret set=%v
	LiveBackend=%v

	Broker:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	CartEventsTopic=%q
	TelemetryEnabled=%v

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Commerce.APIURL,
		c.Commerce.ConsumerKey != "",
		c.Commerce.ConsumerSecret != "",
		c.Commerce.Live(),
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.CartEventsTopic,
		c.Broker.Enabled(),
	)
}
