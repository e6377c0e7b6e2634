package refdata

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SubdivisionModel is the GORM model for the iso3166_2 table
// GORM uses struct tags to map to database columns
type SubdivisionModel struct {
	CountryCode     string `gorm:"column:country_code"`
	SubdivisionName string `gorm:"column:subdivision_name"`
	RegionCode      string `gorm:"column:region_code"`
}

// TableName overrides GORM's pluralized default ("subdivision_models")
func (SubdivisionModel) TableName() string {
	return "iso3166_2"
}

// MySQLSource implements Source using MySQL with GORM.
// Useful when the reference data is maintained in a shared database
// instead of a CSV file shipped with the binary.
type MySQLSource struct {
	db *gorm.DB
}

// NewMySQLSource creates a MySQL source
//
// Parameters:
//   - dsn: Data Source Name (connection string)
//     Format: user:password@tcp(host:port)/dbname?parseTime=true
//
// Returns:
//   - *MySQLSource: pointer to the created source
//   - error: any error that occurred during connection
func NewMySQLSource(dsn string) (*MySQLSource, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(mysql.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL with GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// The reference data is read exactly once at startup, so the pool
	// stays small
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping MySQL database: %w", err)
	}

	return &MySQLSource{db: db}, nil
}

// LoadIndex reads every subdivision row and builds the index
func (s *MySQLSource) LoadIndex() (*Index, error) {
	var rows []SubdivisionModel

	// GORM query: SELECT * FROM iso3166_2
	result := s.db.Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query iso3166_2 table: %w", result.Error)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("iso3166_2 table is empty")
	}

	index := NewIndex()
	for _, row := range rows {
		index.Add(row.CountryCode, row.RegionCode)
	}
	return index, nil
}

// Close closes the database connection
func (s *MySQLSource) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
