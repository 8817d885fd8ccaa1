package config

import (
	"fmt"

	"gbsorgapi/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the global GORM database instance used throughout the application.
var DB *gorm.DB

// BuildDSN renders a MySQL DSN. Dates are read and written in UTC.
func BuildDSN(user, pass, host string, port int, name string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, name)
}

// Open connects GORM to the MySQL server behind dsn.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if Cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(Cfg.DBMaxOpenConns)
	}
	if Cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(Cfg.DBMaxIdleConns)
	}
	if Cfg.DBConnMaxLife > 0 {
		sqlDB.SetConnMaxLifetime(Cfg.DBConnMaxLife)
	}
	return db, nil
}

// ConnectDB establishes database connection using GORM with configured MySQL credentials.
func ConnectDB() error {
	logger.Infof("Connecting to database %s@%s:%d/%s", Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)

	db, err := Open(BuildDSN(Cfg.DBUser, Cfg.DBPass, Cfg.DBHost, Cfg.DBPort, Cfg.DBName))
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return err
	}
	logger.Infof("GORM connected successfully to database %s", Cfg.DBName)

	DB = db
	return nil
}
