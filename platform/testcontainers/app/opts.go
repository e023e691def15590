package app

import (
	"io"
	"maps"
	"time"

	tc "github.com/you-humble/parts-inventory/platform/testcontainers"
)

type Option func(*Config)

// WithName sets the container name. Names are global to the docker host, so suites
// should add a random suffix.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithDockerfile builds the image from file, relative to the build context dir.
func WithDockerfile(dir, file string) Option {
	return func(c *Config) {
		c.DockerfileDir = dir
		c.Dockerfile = file
	}
}

// WithPort sets the HTTP port the service listens on inside the container. The health
// check follows it.
func WithPort(port string) Option {
	return func(c *Config) {
		c.Port = port
	}
}

func WithNetwork(name string) Option {
	return func(c *Config) {
		c.Networks = append(c.Networks, name)
	}
}

// WithEnv adds environment variables; later calls win on duplicate keys.
func WithEnv(env map[string]string) Option {
	return func(c *Config) {
		maps.Copy(c.Env, env)
	}
}

// MongoEnv is how the service reaches its mongo store from inside the network.
type MongoEnv struct {
	Host     string
	Port     string
	Database string
	Username string
	Password string
	AuthDB   string
}

// WithMongo selects the mongo store driver and points it at m.
func WithMongo(m MongoEnv) Option {
	return func(c *Config) {
		maps.Copy(c.Env, map[string]string{
			tc.StoreDriverKey:   "mongo",
			tc.MongoHostKey:     m.Host,
			tc.MongoPortKey:     m.Port,
			tc.MongoDatabaseKey: m.Database,
			tc.MongoUsernameKey: m.Username,
			tc.MongoPasswordKey: m.Password,
			tc.MongoAuthDBKey:   m.AuthDB,
		})
	}
}

func WithLogOutput(out io.Writer) Option {
	return func(c *Config) {
		c.LogOutput = out
	}
}

// WithHealthCheck waits for path to answer 200 on the service port before the
// container counts as started.
func WithHealthCheck(path string, timeout time.Duration) Option {
	return func(c *Config) {
		c.HealthPath = path
		c.StartupTimeout = timeout
	}
}
