// Package server wires the market runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	marketv1 "github.com/openmint/marketplace/api/market/v1"
	"github.com/openmint/marketplace/internal/market/domain"
	"github.com/openmint/marketplace/internal/platform/config"
	"github.com/openmint/marketplace/internal/platform/grpc/jsoncodec"
	marketservice "github.com/openmint/marketplace/internal/services/market/api/grpc/market"
	marketsqlite "github.com/openmint/marketplace/internal/services/market/storage/sqlite"
)

type serverEnv struct {
	DBPath       string `env:"OPENMINT_MARKET_DB_PATH"`
	FeeRecipient string `env:"OPENMINT_MARKET_FEE_RECIPIENT"`
	FeePercent   int    `env:"OPENMINT_MARKET_FEE_PERCENT" envDefault:"1"`
}

func loadServerEnv() (serverEnv, error) {
	var cfg serverEnv
	if err := config.ParseEnv(&cfg); err != nil {
		return serverEnv{}, fmt.Errorf("parse market env: %w", err)
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "market.db")
	}
	if strings.TrimSpace(cfg.FeeRecipient) == "" {
		return serverEnv{}, errors.New("OPENMINT_MARKET_FEE_RECIPIENT is required")
	}
	return cfg, nil
}

// Server hosts the market gRPC API and storage lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *marketsqlite.Store
}

// New creates a configured market server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured market server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env, err := loadServerEnv()
	if err != nil {
		_ = listener.Close()
		return nil, err
	}
	store, err := openMarketStore(env)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	grpcServer := grpc.NewServer(
		grpc.ForceServerCodec(jsoncodec.Codec{}),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	apiService := marketservice.NewService(store)
	healthServer := health.NewServer()
	marketv1.RegisterMarketServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(marketv1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a market server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("market server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases market server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close market store: %v", err)
		}
	}
}

func openMarketStore(env serverEnv) (*marketsqlite.Store, error) {
	if dir := filepath.Dir(env.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := marketsqlite.Open(env.DBPath, domain.FeeConfig{
		Recipient: env.FeeRecipient,
		Percent:   env.FeePercent,
	})
	if err != nil {
		return nil, fmt.Errorf("open market sqlite store: %w", err)
	}
	return store, nil
}
