package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the configured database, migrates the snapshot table and keeps
// the handle in DB.
func Init(driver, dsn string, zapLogger *zap.Logger) error {
	db, err := Open(driver, dsn, zapLogger)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Open connects with one of the supported drivers: postgres, mysql or
// sqlite. The sqlite driver is pure Go and accepts ":memory:".
func Open(driver, dsn string, zapLogger *zap.Logger) (*gorm.DB, error) {
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}
	gormConfig := &gorm.Config{
		Logger: logger.New(
			GormLogAdapter{zapLogger},
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
		SkipDefaultTransaction: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	case "mysql":
		db, err = gorm.Open(mysql.Open(dsn), gormConfig)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(dsn), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if driver == "sqlite" {
		// Each connection to ":memory:" is a separate database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("migrate snapshots: %w", err)
	}

	zapLogger.Info("database ready", zap.String("driver", driver))
	return db, nil
}

func GetDB() *gorm.DB {
	return DB
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GormLogAdapter routes gorm's log lines to zap.
type GormLogAdapter struct {
	ZapLogger *zap.Logger
}

func (l GormLogAdapter) Printf(format string, args ...interface{}) {
	l.ZapLogger.Debug(fmt.Sprintf(format, args...))
}
