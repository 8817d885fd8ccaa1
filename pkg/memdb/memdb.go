// Package memdb runs an in-process MySQL-compatible server backed by go-mysql-server's
// memory storage. It is used by tests and by `serve --memory` for local development.
package memdb

import (
	"context"
	"fmt"
	"net"
	"time"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"

	"gbsorgapi/pkg/logger"
)

// Server is a running in-memory MySQL server holding a single database.
type Server struct {
	server   *server.Server
	Port     int
	Database string
	cancel   context.CancelFunc
}

// Start launches the server on a free localhost port and waits until it accepts connections.
func Start(ctx context.Context, database string) (*Server, error) {
	if database == "" {
		return nil, fmt.Errorf("database name is required")
	}

	port, err := GetFreePort()
	if err != nil {
		return nil, fmt.Errorf("failed to get free port: %w", err)
	}

	db := memory.NewDatabase(database)
	provider := memory.NewDBProvider(db)
	engine := sqle.NewDefault(provider)

	config := server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("127.0.0.1:%d", port),
	}

	s, err := server.NewServer(config, engine, sql.NewContext, memory.NewSessionBuilder(provider), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)

	go func() {
		if err := s.Start(); err != nil {
			logger.Errorf("memdb server on port %d stopped: %v", port, err)
		}
	}()

	go func() {
		<-serverCtx.Done()
		if err := s.Close(); err != nil {
			logger.Warnf("Failed to close memdb server on port %d: %v", port, err)
		}
	}()

	readyCtx, readyCancel := context.WithTimeout(ctx, 5*time.Second)
	defer readyCancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-readyCtx.Done():
			cancel()
			return nil, fmt.Errorf("memdb server failed to start within timeout: %w", readyCtx.Err())
		case <-ticker.C:
			conn, err := net.DialTimeout("tcp", config.Address, 100*time.Millisecond)
			if err == nil {
				conn.Close()
				logger.Infof("Started in-memory MySQL server on port %d (database %s)", port, database)
				return &Server{
					server:   s,
					Port:     port,
					Database: database,
					cancel:   cancel,
				}, nil
			}
		}
	}
}

// Host returns the address clients should dial.
func (s *Server) Host() string {
	return "127.0.0.1"
}

// Close shuts the server down.
func (s *Server) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// GetFreePort finds an available TCP port.
func GetFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}
