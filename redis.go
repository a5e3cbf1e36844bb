package gofetch

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// newRedisClient builds the pooled client for the configured backend.
// With a sentinel master name set, a failover client tracks the
// current master; otherwise the URI is parsed directly.
func newRedisClient(settings WorkerSettings) (*redis.Client, error) {
	if settings.MasterName != "" {
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    settings.MasterName,
			SentinelAddrs: settings.SentinelAddrs,
			PoolSize:      settings.Connections,
		}), nil
	}

	opts, err := redis.ParseURL(settings.URI)
	if err != nil {
		return nil, err
	}
	opts.PoolSize = settings.Connections

	if len(settings.TLSCertPath) > 0 {
		certPool, err := getCertPool(settings.TLSCertPath)
		if err != nil {
			return nil, err
		}
		opts.TLSConfig = &tls.Config{
			RootCAs:            certPool,
			InsecureSkipVerify: settings.SkipTLSVerify,
		}
	}

	return redis.NewClient(opts), nil
}

func getCertPool(certPath string) (*x509.CertPool, error) {
	rootCAs, _ := x509.SystemCertPool()
	if rootCAs == nil {
		rootCAs = x509.NewCertPool()
	}
	certs, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q for the RootCA pool: %v", certPath, err)
	}
	if ok := rootCAs.AppendCertsFromPEM(certs); !ok {
		return nil, fmt.Errorf("failed to append %q to the RootCA pool: %v", certPath, err)
	}
	return rootCAs, nil
}
