package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/namhbcf1/smartpos-sub005/internal/adapter/handler"
	"github.com/namhbcf1/smartpos-sub005/internal/adapter/handler/pb"
	"github.com/namhbcf1/smartpos-sub005/internal/adapter/storage"
	"github.com/namhbcf1/smartpos-sub005/internal/core/service"
	"github.com/namhbcf1/smartpos-sub005/internal/port"
)

const (
	httpPort       = ":8080"
	grpcPort       = ":50051"
	defaultBackend = "sqlite"
	sqlitePath     = "smartpos-sync.db"
	mysqlDSN       = "root:root@tcp(localhost:3306)/smartpos?parseTime=true"
	redisAddr      = "localhost:6379"
	mailboxSize    = 256
	persistTimeout = 5 * time.Second
	idleTTL        = 10 * time.Minute
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gateway, cleanup := openGateway(ctx)
	defer cleanup()

	registry := service.NewConnectionRegistry()
	directory := service.NewActorDirectory(gateway, registry, service.DirectoryConfig{
		PersistTimeout: persistTimeout,
		MailboxSize:    mailboxSize,
		IdleTTL:        idleTTL,
	})

	// HTTP: one-shot mutations plus the WebSocket sync endpoint.
	httpHandler := handler.NewHTTPHandler(directory)
	wsHandler := handler.NewWSHandler(directory, registry)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/update", httpHandler.Update)
	mux.HandleFunc("/snapshot", httpHandler.Snapshot)
	mux.HandleFunc("/sync", wsHandler.Sync)

	httpServer := &http.Server{
		Addr:    envOr("HTTP_ADDR", httpPort),
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// gRPC: back-office one-shot surface.
	grpcServer := grpc.NewServer()
	pb.RegisterInventorySyncServer(grpcServer, handler.NewGRPCHandler(directory))

	lis, err := net.Listen("tcp", envOr("GRPC_ADDR", grpcPort))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	go func() {
		log.Printf("gRPC server listening on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	directory.Close()
	log.Println("actors stopped")
}

// openGateway selects the snapshot backend from STORAGE_BACKEND
// (sqlite|mysql|redis). SQLite is the default so the server runs with no
// external services.
func openGateway(ctx context.Context) (port.PersistenceGateway, func()) {
	switch backend := envOr("STORAGE_BACKEND", defaultBackend); backend {
	case "mysql":
		db, err := sql.Open("mysql", envOr("MYSQL_DSN", mysqlDSN))
		if err != nil {
			log.Fatalf("failed to connect mysql: %v", err)
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping mysql: %v", err)
		}
		gw := storage.NewMySQLGateway(db)
		if err := gw.Migrate(ctx); err != nil {
			log.Fatalf("failed to migrate mysql: %v", err)
		}
		log.Println("connected to mysql")
		return gw, func() { db.Close() }

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     envOr("REDIS_ADDR", redisAddr),
			PoolSize: 100,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		log.Println("connected to redis")
		return storage.NewRedisGateway(rdb), func() { rdb.Close() }

	case "sqlite":
		gw, err := storage.NewSQLiteGateway(envOr("SQLITE_PATH", sqlitePath))
		if err != nil {
			log.Fatalf("failed to open sqlite: %v", err)
		}
		log.Println("opened sqlite database")
		return gw, func() { gw.Close() }

	default:
		log.Fatalf("unknown STORAGE_BACKEND %q", backend)
		return nil, nil
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
