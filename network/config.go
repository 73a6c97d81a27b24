package network

import (
	"time"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/engine"
)

// Config holds server configuration
type Config struct {
	// Address to bind
	Address string

	// Connection limits
	MaxSessions    int
	MaxMessageSize int64

	// Timing
	FrameInterval   time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	PingInterval    time.Duration
	ShutdownTimeout time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int

	// Options builds the session options for a game name
	Options func(game string) engine.Options
}

// DefaultConfig returns production-safe defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         ":8080",
		MaxSessions:     64,
		MaxMessageSize:  4 * 1024,
		FrameInterval:   constants.FrameUpdateInterval,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    5 * time.Second,
		PingInterval:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		ReadBufferSize:  4 * 1024,
		WriteBufferSize: 64 * 1024,
		SendQueueSize:   8,
		Options:         engine.DefaultOptions,
	}
}
