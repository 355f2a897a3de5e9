package config

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var (
	db *gorm.DB
)

func GetDB() *gorm.DB {
	return db
}

// MySQLDSN builds the connection string from the DB_* settings.
// A DB_HOST starting with "/cloudsql/" is dialed as a unix socket.
func MySQLDSN(cfg AppConfig) string {
	dsn := mysqlDriver.NewConfig()
	dsn.User = cfg.DBUser
	dsn.Passwd = cfg.DBPassword
	dsn.DBName = cfg.DBName
	dsn.ParseTime = true
	dsn.MultiStatements = true
	if strings.HasPrefix(cfg.DBHost, "/cloudsql/") {
		dsn.Net = "unix"
		dsn.Addr = cfg.DBHost
	} else {
		dsn.Net = "tcp"
		dsn.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	}
	return dsn.FormatDSN()
}

// Dialector picks the gorm driver for the configured storage backend.
func Dialector(cfg AppConfig) (gorm.Dialector, error) {
	switch cfg.StorageBackend {
	case StorageMySQL:
		return mysql.Open(MySQLDSN(cfg)), nil
	case StorageSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("storage backend %q is not a SQL backend", cfg.StorageBackend)
	}
}

// ConnectDatabaseWithRetry opens the SQL database and sets the global DB.
func ConnectDatabaseWithRetry(ctx context.Context, cfg AppConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	var attempt int
	for {
		attempt++
		conn, err := OpenDatabase(dialector)
		if err == nil {
			db = conn
			log.Printf("connected to database (attempt=%d backend=%s)", attempt, cfg.StorageBackend)
			return db, nil
		}

		if cfg.ConnectAttempts > 0 && attempt >= cfg.ConnectAttempts {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		sleep := retryDelay(attempt)
		log.Printf("failed to connect database (attempt=%d): %v; retrying in %s", attempt, err, sleep)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}
}

// OpenDatabase opens a gorm connection with the shared pool tuning and tracing plugin.
func OpenDatabase(dialector gorm.Dialector) (*gorm.DB, error) {
	conn, err := gorm.Open(dialector, initConfig())
	if err != nil {
		return nil, err
	}
	// Env overrides (optional):
	// - DB_MAX_OPEN_CONNS (default 50)
	// - DB_MAX_IDLE_CONNS (default 25)
	// - DB_CONN_MAX_LIFETIME_SECONDS (default 300)
	if sqlDB, derr := conn.DB(); derr == nil && sqlDB != nil {
		if err := sqlDB.Ping(); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		maxOpen := intFromEnv("DB_MAX_OPEN_CONNS", 50)
		maxIdle := intFromEnv("DB_MAX_IDLE_CONNS", 25)
		connMaxLife := time.Duration(intFromEnv("DB_CONN_MAX_LIFETIME_SECONDS", 300)) * time.Second
		if maxOpen > 0 {
			sqlDB.SetMaxOpenConns(maxOpen)
		}
		if maxIdle >= 0 {
			sqlDB.SetMaxIdleConns(maxIdle)
		}
		if connMaxLife > 0 {
			sqlDB.SetConnMaxLifetime(connMaxLife)
		}
	}

	if pluginErr := conn.Use(otelgorm.NewPlugin()); pluginErr != nil {
		log.Printf("db connected but failed to install otelgorm plugin: %v", pluginErr)
	}
	return conn, nil
}

func initConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         initLog(),
		NamingStrategy: schema.NamingStrategy{SingularTable: false},
	}
}

func initLog() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			Colorful:                  false,
			LogLevel:                  logger.Error,
			SlowThreshold:             time.Second,
			IgnoreRecordNotFoundError: true,
		},
	)
}
