package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultSendBuffer   = 64
	defaultKafkaTopic   = "comment-events"
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

type config struct {
	DatabaseHost string
	DatabasePort string
	DatabaseUser string
	DatabasePass string
	DatabaseName string

	CacheHost string
	CachePort string
	CachePass string
	CacheDB   int

	ContextTimeout time.Duration
	ServerAddress  string
	JWTSecret      string
	BloomBitSize   uint64
	CORSOrigins    []string
	WSSendBuffer   int

	// KafkaBrokers empty disables event export.
	KafkaBrokers []string
	KafkaTopic   string
}

// loadConfig reads the process environment; values from .env are loaded before it runs.
func loadConfig() (config, error) {
	cfg := config{
		DatabaseHost:  os.Getenv("DATABASE_HOST"),
		DatabasePort:  os.Getenv("DATABASE_PORT"),
		DatabaseUser:  os.Getenv("DATABASE_USER"),
		DatabasePass:  os.Getenv("DATABASE_PASS"),
		DatabaseName:  os.Getenv("DATABASE_NAME"),
		CacheHost:     os.Getenv("CACHE_HOST"),
		CachePort:     os.Getenv("CACHE_PORT"),
		CachePass:     os.Getenv("CACHE_PASS"),
		ServerAddress: os.Getenv("SERVER_ADDRESS"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}
	if cfg.JWTSecret == "" {
		return config{}, errors.New("JWT_SECRET is required")
	}
	if cfg.ServerAddress == "" {
		cfg.ServerAddress = defaultAddress
	}

	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		logrus.Warn("failed to parse CACHE_DB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	cfg.CacheDB = cacheDB

	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil || timeout <= 0 {
		logrus.Warn("failed to parse CONTEXT_TIMEOUT, using default timeout")
		timeout = defaultTimeout
	}
	cfg.ContextTimeout = time.Duration(timeout) * time.Second

	bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil || bloomBitSize == 0 {
		logrus.Warn("failed to parse BLOOM_FILTER_SIZE, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	cfg.BloomBitSize = bloomBitSize

	sendBuffer, err := strconv.Atoi(os.Getenv("WS_SEND_BUFFER"))
	if err != nil || sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}
	cfg.WSSendBuffer = sendBuffer

	cfg.CORSOrigins = splitList(os.Getenv("CORS_ORIGINS"))
	cfg.KafkaBrokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.KafkaTopic = os.Getenv("KAFKA_TOPIC")
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = defaultKafkaTopic
	}
	return cfg, nil
}

func splitList(s string) []string {
	var res []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

func (c config) DSN() string {
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.DatabaseUser, c.DatabasePass, c.DatabaseHost, c.DatabasePort, c.DatabaseName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	val.Add("charset", "utf8mb4")
	return fmt.Sprintf("%s?%s", connection, val.Encode())
}

func (c config) CacheAddr() string {
	return c.CacheHost + ":" + c.CachePort
}
